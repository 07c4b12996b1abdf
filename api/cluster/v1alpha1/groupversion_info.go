// Package v1alpha1 contains the subset of the cluster.k8s.io v1alpha1 API group
// that machine manifests use.
// +kubebuilder:object:generate=true
// +groupName=cluster.k8s.io
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "cluster.k8s.io", Version: "v1alpha1"}

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
