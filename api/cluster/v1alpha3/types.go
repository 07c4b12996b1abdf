package v1alpha3

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Machine is a cluster node backed by a separate infrastructure object.
type Machine struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec MachineSpec `json:"spec,omitempty"`
}

// MachineSpec defines the desired state of a Machine.
type MachineSpec struct {
	// ClusterName is the name of the Cluster this object belongs to
	ClusterName string `json:"clusterName"`

	// Bootstrap is a reference to a bootstrap provider object or inline data
	Bootstrap Bootstrap `json:"bootstrap"`

	// InfrastructureRef is a required reference to the provider-specific object
	InfrastructureRef corev1.ObjectReference `json:"infrastructureRef"`

	// Version is the Kubernetes version the node should run
	// +optional
	Version *string `json:"version,omitempty"`
}

// Bootstrap capsules bootstrap-related configuration.
type Bootstrap struct {
	// ConfigRef is a reference to a bootstrap provider-specific resource
	// +optional
	ConfigRef *corev1.ObjectReference `json:"configRef,omitempty"`

	// DataSecretName is the name of the secret that stores the bootstrap data script
	// +optional
	DataSecretName *string `json:"dataSecretName,omitempty"`
}

// MachineList contains a list of Machine.
type MachineList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Machine `json:"items"`
}
