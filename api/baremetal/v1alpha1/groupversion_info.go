// Package v1alpha1 contains the bare-metal machine provider spec embedded in
// cluster.k8s.io/v1alpha1 Machines.
// +kubebuilder:object:generate=true
// +groupName=baremetalproviderspec
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "baremetalproviderspec", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme
	AddToScheme = SchemeBuilder.AddToScheme
)

// BareMetalMachineProviderSpecKind is the kind name of the provider spec.
const BareMetalMachineProviderSpecKind = "BareMetalMachineProviderSpec"

func init() {
	SchemeBuilder.Register(&BareMetalMachineProviderSpec{})
}
