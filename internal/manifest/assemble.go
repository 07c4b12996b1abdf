package manifest

import (
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/imamik/machinegen/internal/instance"
	"github.com/imamik/machinegen/internal/plan"
	"github.com/imamik/machinegen/internal/util/naming"
)

// Assembler fills every slot of a plan from an instance list.
type Assembler struct {
	Builder Builder
	Plan    plan.Plan
	Logger  logr.Logger
}

// Assemble resolves each slot to the instance named {user}-wks-{ordinal} and
// returns the built objects in slot order. It stops at the first slot that
// cannot be resolved or built and returns no objects in that case.
func (a *Assembler) Assemble(instances []instance.Instance, user string) ([]runtime.Object, error) {
	var objs []runtime.Object
	for _, slot := range a.Plan.Slots() {
		name := naming.VM(user, slot.Ordinal)

		inst, err := instance.Find(instances, name)
		if err != nil {
			return nil, fmt.Errorf("slot %d (%s): %w", slot.Ordinal, slot.Role, err)
		}

		built, err := a.Builder.Build(inst, slot.Role)
		if err != nil {
			return nil, fmt.Errorf("slot %d (%s): failed to build manifests: %w", slot.Ordinal, slot.Role, err)
		}

		a.Logger.V(1).Info("resolved slot", "ordinal", slot.Ordinal, "role", slot.Role.String(), "instance", name, "objects", len(built))
		objs = append(objs, built...)
	}
	return objs, nil
}

// Assemble is a convenience wrapper around Assembler without logging.
func Assemble(instances []instance.Instance, user string, p plan.Plan, b Builder) ([]runtime.Object, error) {
	a := &Assembler{Builder: b, Plan: p, Logger: logr.Discard()}
	return a.Assemble(instances, user)
}
