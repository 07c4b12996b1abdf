// Package v1alpha3 contains the subset of the cluster.x-k8s.io v1alpha3 API group
// that machine manifests use.
// +kubebuilder:object:generate=true
// +groupName=cluster.x-k8s.io
package v1alpha3

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "cluster.x-k8s.io", Version: "v1alpha3"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme
	AddToScheme = SchemeBuilder.AddToScheme
)

// MachineKind is the kind name of Machine objects.
const MachineKind = "Machine"

func init() {
	SchemeBuilder.Register(&Machine{}, &MachineList{})
}
