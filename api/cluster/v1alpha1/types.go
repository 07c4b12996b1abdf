package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// Machine is a cluster node whose provider-specific details are carried inline.
type Machine struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec MachineSpec `json:"spec,omitempty"`
}

// MachineSpec defines the desired state of a Machine.
type MachineSpec struct {
	// ProviderSpec details provider-specific configuration
	ProviderSpec ProviderSpec `json:"providerSpec"`
}

// ProviderSpec wraps an opaque provider configuration object.
type ProviderSpec struct {
	// Value is an inlined, serialized representation of the provider spec
	// +optional
	Value *runtime.RawExtension `json:"value,omitempty"`
}

// MachineList contains a list of Machine.
type MachineList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Machine `json:"items"`
}
