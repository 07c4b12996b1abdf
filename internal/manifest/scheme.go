package manifest

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	baremetalv1alpha1 "github.com/imamik/machinegen/api/baremetal/v1alpha1"
	clusterv1alpha1 "github.com/imamik/machinegen/api/cluster/v1alpha1"
	clusterv1alpha3 "github.com/imamik/machinegen/api/cluster/v1alpha3"
	existinginfrav1alpha3 "github.com/imamik/machinegen/api/existinginfra/v1alpha3"
)

var (
	// Scheme knows every kind a machines manifest may contain, plus core types
	// such as v1 List.
	Scheme = runtime.NewScheme()

	// Codecs decodes manifests against Scheme.
	Codecs = serializer.NewCodecFactory(Scheme)
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(Scheme))
	utilruntime.Must(clusterv1alpha1.AddToScheme(Scheme))
	utilruntime.Must(clusterv1alpha3.AddToScheme(Scheme))
	utilruntime.Must(baremetalv1alpha1.AddToScheme(Scheme))
	utilruntime.Must(existinginfrav1alpha3.AddToScheme(Scheme))
}
