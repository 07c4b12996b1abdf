package manifest

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	baremetalv1alpha1 "github.com/imamik/machinegen/api/baremetal/v1alpha1"
	clusterv1alpha1 "github.com/imamik/machinegen/api/cluster/v1alpha1"
	clusterv1alpha3 "github.com/imamik/machinegen/api/cluster/v1alpha3"
	existinginfrav1alpha3 "github.com/imamik/machinegen/api/existinginfra/v1alpha3"
	"github.com/imamik/machinegen/internal/instance"
	"github.com/imamik/machinegen/internal/plan"
	"github.com/imamik/machinegen/internal/util/labels"
	"github.com/imamik/machinegen/internal/util/naming"
)

// SSHPort is the port recorded for every machine endpoint.
const SSHPort uint16 = 22

// DefaultClusterName is the clusterName given to v1alpha3 Machines.
const DefaultClusterName = "example"

// Builder maps one instance filling a slot to the objects describing it.
type Builder interface {
	Build(inst *instance.Instance, role plan.Role) ([]runtime.Object, error)
}

// Options tune the generated objects.
type Options struct {
	// Namespace is set on every object. Empty leaves it unset.
	Namespace string
	// ClusterName is the cluster v1alpha3 Machines belong to.
	ClusterName string
	// KubernetesVersion is set as spec.version on v1alpha3 Machines. Empty leaves it unset.
	KubernetesVersion string
}

// NewBuilder returns the builder for a variant.
func NewBuilder(v Variant, opts Options) (Builder, error) {
	switch v {
	case VariantMachine:
		return &MachineBuilder{opts: opts}, nil
	case VariantExistingInfra:
		if opts.ClusterName == "" {
			opts.ClusterName = DefaultClusterName
		}
		return &ExistingInfraBuilder{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown manifest variant %q", v)
	}
}

// addresses returns the public and private address of inst.
func addresses(inst *instance.Instance) (string, string, error) {
	public, err := inst.PublicIP()
	if err != nil {
		return "", "", err
	}
	private, err := inst.PrivateIP()
	if err != nil {
		return "", "", err
	}
	return public, private, nil
}

// machineLabels returns the labels every Machine carries.
func machineLabels(role plan.Role) map[string]string {
	return labels.NewLabelBuilder().
		WithRole(role.String()).
		WithManagedBy(labels.ManagedByMachinegen).
		Build()
}

// MachineBuilder builds cluster.k8s.io/v1alpha1 Machines with the endpoints inline.
type MachineBuilder struct {
	opts Options
}

// Build implements Builder.
func (b *MachineBuilder) Build(inst *instance.Instance, role plan.Role) ([]runtime.Object, error) {
	m, err := b.Machine(inst, role)
	if err != nil {
		return nil, err
	}
	return []runtime.Object{m}, nil
}

// Machine builds the Machine for inst.
func (b *MachineBuilder) Machine(inst *instance.Instance, role plan.Role) (*clusterv1alpha1.Machine, error) {
	public, private, err := addresses(inst)
	if err != nil {
		return nil, err
	}

	providerSpec := &baremetalv1alpha1.BareMetalMachineProviderSpec{
		TypeMeta: metav1.TypeMeta{
			APIVersion: baremetalv1alpha1.GroupVersion.String(),
			Kind:       baremetalv1alpha1.BareMetalMachineProviderSpecKind,
		},
		Public:  baremetalv1alpha1.EndPoint{Address: public, Port: SSHPort},
		Private: baremetalv1alpha1.EndPoint{Address: private, Port: SSHPort},
	}

	return &clusterv1alpha1.Machine{
		TypeMeta: metav1.TypeMeta{
			APIVersion: clusterv1alpha1.GroupVersion.String(),
			Kind:       clusterv1alpha1.MachineKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: naming.GenerateNamePrefix(role.String()),
			Namespace:    b.opts.Namespace,
			Labels:       machineLabels(role),
		},
		Spec: clusterv1alpha1.MachineSpec{
			ProviderSpec: clusterv1alpha1.ProviderSpec{
				Value: &runtime.RawExtension{Object: providerSpec},
			},
		},
	}, nil
}

// ExistingInfraBuilder builds cluster.x-k8s.io/v1alpha3 Machines, each paired
// with an ExistingInfraMachine of the same name.
type ExistingInfraBuilder struct {
	opts Options
}

// Build implements Builder. The Machine comes first, then its companion.
func (b *ExistingInfraBuilder) Build(inst *instance.Instance, role plan.Role) ([]runtime.Object, error) {
	m, err := b.Machine(inst, role)
	if err != nil {
		return nil, err
	}
	infra, err := b.ProviderRecord(inst, role)
	if err != nil {
		return nil, err
	}
	return []runtime.Object{m, infra}, nil
}

// Machine builds the Machine referencing inst's ExistingInfraMachine.
func (b *ExistingInfraBuilder) Machine(inst *instance.Instance, role plan.Role) (*clusterv1alpha3.Machine, error) {
	public, err := inst.PublicIP()
	if err != nil {
		return nil, err
	}
	name := naming.InfraMachine(role.String(), public)

	var version *string
	if b.opts.KubernetesVersion != "" {
		v := b.opts.KubernetesVersion
		version = &v
	}

	return &clusterv1alpha3.Machine{
		TypeMeta: metav1.TypeMeta{
			APIVersion: clusterv1alpha3.GroupVersion.String(),
			Kind:       clusterv1alpha3.MachineKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: b.opts.Namespace,
			Labels:    machineLabels(role),
		},
		Spec: clusterv1alpha3.MachineSpec{
			ClusterName: b.opts.ClusterName,
			Version:     version,
			InfrastructureRef: corev1.ObjectReference{
				APIVersion: existinginfrav1alpha3.GroupVersion.String(),
				Kind:       existinginfrav1alpha3.ExistingInfraMachineKind,
				Namespace:  b.opts.Namespace,
				Name:       name,
			},
		},
	}, nil
}

// ProviderRecord builds the ExistingInfraMachine holding inst's endpoints.
func (b *ExistingInfraBuilder) ProviderRecord(inst *instance.Instance, role plan.Role) (*existinginfrav1alpha3.ExistingInfraMachine, error) {
	public, private, err := addresses(inst)
	if err != nil {
		return nil, err
	}

	return &existinginfrav1alpha3.ExistingInfraMachine{
		TypeMeta: metav1.TypeMeta{
			APIVersion: existinginfrav1alpha3.GroupVersion.String(),
			Kind:       existinginfrav1alpha3.ExistingInfraMachineKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.InfraMachine(role.String(), public),
			Namespace: b.opts.Namespace,
		},
		Spec: existinginfrav1alpha3.ExistingInfraMachineSpec{
			Public:  existinginfrav1alpha3.EndPoint{Address: public, Port: SSHPort},
			Private: existinginfrav1alpha3.EndPoint{Address: private, Port: SSHPort},
		},
	}, nil
}
