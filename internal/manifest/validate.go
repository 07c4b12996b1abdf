package manifest

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/validation/field"

	baremetalv1alpha1 "github.com/imamik/machinegen/api/baremetal/v1alpha1"
	clusterv1alpha1 "github.com/imamik/machinegen/api/cluster/v1alpha1"
	clusterv1alpha3 "github.com/imamik/machinegen/api/cluster/v1alpha3"
	existinginfrav1alpha3 "github.com/imamik/machinegen/api/existinginfra/v1alpha3"
	"github.com/imamik/machinegen/internal/plan"
	"github.com/imamik/machinegen/internal/util/labels"
)

// Validate checks a machines manifest is usable for bootstrapping: it holds at
// least one master, uses a single variant, and for the existinginfra variant
// every Machine references the companion at the same position and all
// Machines agree on the Kubernetes version.
func Validate(objs []runtime.Object) field.ErrorList {
	if len(objs) == 0 {
		return field.ErrorList{nonFieldError("no machines")}
	}

	var (
		errs     field.ErrorList
		inline   []*clusterv1alpha1.Machine
		machines []*clusterv1alpha3.Machine
		infra    []*existinginfrav1alpha3.ExistingInfraMachine
	)

	for i, obj := range objs {
		switch typed := obj.(type) {
		case *clusterv1alpha1.Machine:
			inline = append(inline, typed)
		case *clusterv1alpha3.Machine:
			machines = append(machines, typed)
		case *existinginfrav1alpha3.ExistingInfraMachine:
			infra = append(infra, typed)
		default:
			errs = append(errs, field.Invalid(objectPath(i, "kind"), obj.GetObjectKind().GroupVersionKind().Kind, "unexpected object in machines manifest"))
		}
	}

	if len(inline) > 0 && len(machines)+len(infra) > 0 {
		errs = append(errs, nonFieldError("mixed manifest variants: %d v1alpha1 Machines and %d v1alpha3 objects", len(inline), len(machines)+len(infra)))
	}

	if countRole(objs, plan.RoleMaster) == 0 {
		errs = append(errs, field.Invalid(
			field.NewPath("metadata", "labels", labels.KeySet),
			"",
			"no master node defined, need at least one master"))
	}

	for i, m := range inline {
		errs = append(errs, validateProviderSpec(i, m)...)
	}

	if len(machines) != len(infra) {
		errs = append(errs, nonFieldError("mismatch: %d Machines and %d ExistingInfraMachines", len(machines), len(infra)))
	} else {
		for i, m := range machines {
			ref := m.Spec.InfrastructureRef
			if ref.Name != infra[i].Name {
				errs = append(errs, nonFieldError("mismatch [%d]: reference %q != %q", i, ref.Name, infra[i].Name))
			}
			if ref.Kind != existinginfrav1alpha3.ExistingInfraMachineKind {
				errs = append(errs, field.Invalid(machinePath(i, "spec", "infrastructureRef", "kind"), ref.Kind, "expected "+existinginfrav1alpha3.ExistingInfraMachineKind))
			}
		}
	}

	if len(machines) > 0 {
		errs = append(errs, validateVersions(machines)...)
	}

	for i, b := range infra {
		if b.Spec.Public.Address == "" {
			errs = append(errs, field.Required(machinePath(i, "spec", "public", "address"), "public address is required"))
		}
	}

	return errs
}

// validateVersions requires every Machine to carry the first Machine's
// version, or all of them to carry none.
func validateVersions(machines []*clusterv1alpha3.Machine) field.ErrorList {
	var errs field.ErrorList
	reference := machines[0].Spec.Version

	for i, m := range machines {
		path := machinePath(i, "spec", "version")
		switch {
		case reference == nil && m.Spec.Version != nil:
			errs = append(errs, field.Invalid(path, *m.Spec.Version, "inconsistent kubernetes version, expected nil"))
		case reference != nil && m.Spec.Version == nil:
			errs = append(errs, field.Invalid(path, nil, fmt.Sprintf("inconsistent kubernetes version, expected %q", *reference)))
		case reference != nil && *reference != *m.Spec.Version:
			errs = append(errs, field.Invalid(path, *m.Spec.Version, fmt.Sprintf("inconsistent kubernetes version, expected %q", *reference)))
		}
	}
	return errs
}

func validateProviderSpec(i int, m *clusterv1alpha1.Machine) field.ErrorList {
	path := machinePath(i, "spec", "providerSpec", "value")
	spec, err := ProviderSpecOf(m)
	if err != nil {
		return field.ErrorList{field.Invalid(path, "", err.Error())}
	}
	if spec.Public.Address == "" {
		return field.ErrorList{field.Required(path.Child("public", "address"), "public address is required")}
	}
	return nil
}

// ProviderSpecOf returns the bare-metal provider spec carried by m, decoding
// it when m was read from a file.
func ProviderSpecOf(m *clusterv1alpha1.Machine) (*baremetalv1alpha1.BareMetalMachineProviderSpec, error) {
	value := m.Spec.ProviderSpec.Value
	if value == nil {
		return nil, fmt.Errorf("missing provider spec")
	}
	if spec, ok := value.Object.(*baremetalv1alpha1.BareMetalMachineProviderSpec); ok {
		return spec, nil
	}

	obj, _, err := Codecs.UniversalDeserializer().Decode(value.Raw, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode provider spec: %w", err)
	}
	spec, ok := obj.(*baremetalv1alpha1.BareMetalMachineProviderSpec)
	if !ok {
		return nil, fmt.Errorf("unexpected provider spec type %T", obj)
	}
	return spec, nil
}

// nonFieldError maps an error which can't be expressed as a single-field error into one.
func nonFieldError(format string, args ...interface{}) *field.Error {
	return field.Invalid(field.NewPath("spec"), "[...]", fmt.Sprintf(format, args...))
}

func machinePath(i int, args ...string) *field.Path {
	return field.NewPath(fmt.Sprintf("machines[%d]", i), args...)
}

func objectPath(i int, args ...string) *field.Path {
	return field.NewPath(fmt.Sprintf("objects[%d]", i), args...)
}
