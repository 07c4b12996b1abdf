package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/machinegen/internal/manifest"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"simple", "alice", false},
		{"with digits and hyphen", "team-2", false},
		{"empty", "", true},
		{"blank", "  ", true},
		{"uppercase", "Alice", true},
		{"underscore", "al_ice", true},
		{"leading hyphen", "-alice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUser(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWizardResult_ToParams(t *testing.T) {
	r := &WizardResult{
		User:      " alice ",
		Source:    SourceHCloud,
		Instances: "ignored.json",
		Variant:   manifest.VariantExistingInfra,
		Masters:   3,
		Workers:   0,
		Output:    "s3://bucket/machines.yaml",
	}

	p := r.ToParams()
	assert.Equal(t, "alice", p.User)
	assert.Equal(t, SourceHCloud, p.Source)
	assert.Equal(t, DefaultInstances, p.Instances)
	assert.Equal(t, "existinginfra", p.Variant)
	assert.Equal(t, 3, p.Masters)
	assert.Equal(t, 0, p.Workers)
	assert.Equal(t, "s3://bucket/machines.yaml", p.Output)
}
