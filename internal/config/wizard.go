package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/machinegen/internal/manifest"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	User      string
	Source    string
	Instances string
	Variant   manifest.Variant
	Masters   int
	Workers   int
	Output    string
	Namespace string
}

// RunWizard asks for the parameters of a generation run.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Source:    DefaultSource,
		Instances: DefaultInstances,
		Variant:   manifest.VariantMachine,
		Masters:   1,
		Workers:   2,
		Output:    DefaultOutput,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User").
				Description("Instances are looked up as {user}-wks-1, {user}-wks-2, ...").
				Placeholder("alice").
				Value(&result.User).
				Validate(validateUser),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Instance source").
				Options(
					huh.NewOption("gcloud JSON file", SourceFile),
					huh.NewOption("Hetzner Cloud API (needs HCLOUD_TOKEN)", SourceHCloud),
				).
				Value(&result.Source),
			huh.NewInput().
				Title("Instances file").
				Description("Output of gcloud compute instances list --format json").
				Value(&result.Instances),
		),

		huh.NewGroup(
			huh.NewSelect[manifest.Variant]().
				Title("Manifest variant").
				Options(
					huh.NewOption("Machine with inline provider spec (cluster.k8s.io/v1alpha1)", manifest.VariantMachine),
					huh.NewOption("Machine + ExistingInfraMachine (cluster.x-k8s.io/v1alpha3)", manifest.VariantExistingInfra),
				).
				Value(&result.Variant),
		),

		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Number of masters").
				Options(
					huh.NewOption("1 master", 1),
					huh.NewOption("3 masters", 3),
				).
				Value(&result.Masters),
			huh.NewSelect[int]().
				Title("Number of workers").
				Options(
					huh.NewOption("0 workers", 0),
					huh.NewOption("1 worker", 1),
					huh.NewOption("2 workers", 2),
					huh.NewOption("3 workers", 3),
					huh.NewOption("5 workers", 5),
				).
				Value(&result.Workers),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Output").
				Description("A file path or s3://bucket/key").
				Value(&result.Output).
				Validate(validateOutput),
			huh.NewInput().
				Title("Namespace (optional)").
				Value(&result.Namespace),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToParams converts the wizard result to parameters.
func (r *WizardResult) ToParams() *Params {
	p := Defaults()
	p.User = strings.TrimSpace(r.User)
	p.Source = r.Source
	if r.Source == SourceFile {
		p.Instances = r.Instances
	}
	p.Variant = string(r.Variant)
	p.Masters = r.Masters
	p.Workers = r.Workers
	p.Output = r.Output
	p.Namespace = r.Namespace
	return p
}

// validateUser checks the user forms valid instance names.
func validateUser(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("user is required")
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("user can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' {
		return fmt.Errorf("user cannot start with a hyphen")
	}
	return nil
}

func validateOutput(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("output is required")
	}
	return nil
}
