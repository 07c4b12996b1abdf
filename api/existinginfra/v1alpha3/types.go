package v1alpha3

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ExistingInfraMachine binds a cluster Machine to a host that already exists.
// The Machine's infrastructureRef points at it by name.
type ExistingInfraMachine struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ExistingInfraMachineSpec `json:"spec,omitempty"`
}

// ExistingInfraMachineSpec holds the addresses used to reach the host.
type ExistingInfraMachineSpec struct {
	// Private is the address the host is reachable at from inside the cluster network
	Private EndPoint `json:"private,omitempty"`

	// Public is the address used to SSH into the host
	Public EndPoint `json:"public,omitempty"`

	// ProviderID is the cloud provider identifier of the host
	// +optional
	ProviderID string `json:"providerID,omitempty"`
}

// ExistingInfraMachineList contains a list of ExistingInfraMachine.
type ExistingInfraMachineList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ExistingInfraMachine `json:"items"`
}

// EndPoint groups the details required to establish a connection.
type EndPoint struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
}
