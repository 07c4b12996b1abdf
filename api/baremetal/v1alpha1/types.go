package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BareMetalMachineProviderSpec describes how to reach a pre-provisioned host.
// It travels inside Machine.spec.providerSpec.value.
type BareMetalMachineProviderSpec struct {
	metav1.TypeMeta `json:",inline"`

	Public  EndPoint `json:"public"`
	Private EndPoint `json:"private"`
}

// EndPoint groups the details required to establish a connection.
type EndPoint struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
}
