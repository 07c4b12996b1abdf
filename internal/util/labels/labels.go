package labels

const (
	// KeySet marks a Machine as master or worker. Cluster tooling reads this key.
	KeySet = "set"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "machinegen.io/managed-by"
)

// ManagedByMachinegen is the KeyManagedBy value for objects this tool emits.
const ManagedByMachinegen = "machinegen"

// LabelBuilder provides a fluent interface for building manifest labels.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates an empty label builder.
func NewLabelBuilder() *LabelBuilder {
	return &LabelBuilder{labels: map[string]string{}}
}

// WithRole sets the "set" label to the given role.
func (lb *LabelBuilder) WithRole(role string) *LabelBuilder {
	lb.labels[KeySet] = role
	return lb
}

// WithManagedBy sets who manages this object.
func (lb *LabelBuilder) WithManagedBy(manager string) *LabelBuilder {
	lb.labels[KeyManagedBy] = manager
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	result := make(map[string]string, len(lb.labels))
	for k, v := range lb.labels {
		result[k] = v
	}
	return result
}
