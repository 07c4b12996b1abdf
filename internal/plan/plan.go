package plan

import "fmt"

// Role distinguishes master from worker slots.
type Role string

const (
	// RoleMaster runs the control plane.
	RoleMaster Role = "master"
	// RoleWorker runs workloads.
	RoleWorker Role = "worker"
)

func (r Role) String() string {
	return string(r)
}

// Default topology.
const (
	DefaultMasters = 1
	DefaultWorkers = 2
)

// Slot is one planned position in the cluster.
type Slot struct {
	Ordinal int
	Role    Role
}

// Plan is the number of master and worker slots to fill.
type Plan struct {
	Masters int
	Workers int
}

// Default returns the one-master, two-worker plan.
func Default() Plan {
	return Plan{Masters: DefaultMasters, Workers: DefaultWorkers}
}

// Validate checks the plan has at least one master and no negative counts.
func (p Plan) Validate() error {
	if p.Masters < 1 {
		return fmt.Errorf("plan needs at least one master, got %d", p.Masters)
	}
	if p.Workers < 0 {
		return fmt.Errorf("worker count cannot be negative, got %d", p.Workers)
	}
	return nil
}

// Size is the total number of slots.
func (p Plan) Size() int {
	return p.Masters + p.Workers
}

// Slots lists every slot in iteration order: masters by ascending ordinal,
// then workers.
func (p Plan) Slots() []Slot {
	slots := make([]Slot, 0, p.Size())
	for i := 1; i <= p.Masters; i++ {
		slots = append(slots, Slot{Ordinal: i, Role: RoleMaster})
	}
	for i := p.Masters + 1; i <= p.Masters+p.Workers; i++ {
		slots = append(slots, Slot{Ordinal: i, Role: RoleWorker})
	}
	return slots
}
