package manifest

import (
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"

	clusterv1alpha1 "github.com/imamik/machinegen/api/cluster/v1alpha1"
	existinginfrav1alpha3 "github.com/imamik/machinegen/api/existinginfra/v1alpha3"
	"github.com/imamik/machinegen/internal/plan"
	"github.com/imamik/machinegen/internal/util/labels"
)

// MachineInfo is a flattened view of one generated machine.
type MachineInfo struct {
	Name    string
	Role    string
	Public  string
	Private string
}

// Summary describes a generated manifest.
type Summary struct {
	Kinds    map[string]int
	Masters  int
	Workers  int
	Machines []MachineInfo
}

// RoleOf returns the "set" label of obj, or "" when it carries none.
func RoleOf(obj runtime.Object) string {
	accessor, err := meta.Accessor(obj)
	if err != nil {
		return ""
	}
	return accessor.GetLabels()[labels.KeySet]
}

func countRole(objs []runtime.Object, role plan.Role) int {
	n := 0
	for _, obj := range objs {
		if RoleOf(obj) == role.String() {
			n++
		}
	}
	return n
}

// Summarize counts objects by kind and role and lists machine endpoints.
func Summarize(objs []runtime.Object) Summary {
	s := Summary{
		Kinds:   map[string]int{},
		Masters: countRole(objs, plan.RoleMaster),
		Workers: countRole(objs, plan.RoleWorker),
	}

	infra := map[string]*existinginfrav1alpha3.ExistingInfraMachine{}
	for _, obj := range objs {
		s.Kinds[obj.GetObjectKind().GroupVersionKind().Kind]++
		if b, ok := obj.(*existinginfrav1alpha3.ExistingInfraMachine); ok {
			infra[b.Name] = b
		}
	}

	for _, obj := range objs {
		role := RoleOf(obj)
		if role == "" {
			continue
		}
		accessor, err := meta.Accessor(obj)
		if err != nil {
			continue
		}
		info := MachineInfo{Name: accessor.GetName(), Role: role}
		if info.Name == "" {
			info.Name = accessor.GetGenerateName() + "*"
		}

		switch m := obj.(type) {
		case *clusterv1alpha1.Machine:
			if spec, err := ProviderSpecOf(m); err == nil {
				info.Public, info.Private = spec.Public.Address, spec.Private.Address
			}
		default:
			if b, ok := infra[info.Name]; ok {
				info.Public, info.Private = b.Spec.Public.Address, b.Spec.Private.Address
			}
		}
		s.Machines = append(s.Machines, info)
	}
	return s
}
