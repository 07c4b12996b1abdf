package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/machinegen/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	p := result.ToParams()

	if err := writeConfig(p, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, p)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("machinegen - Machine manifests from cloud instances")
	fmt.Println("===================================================")
	fmt.Println()
	fmt.Println("This wizard creates a machinegen.yaml for the generate command.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, p *config.Params) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  User:     %s\n", p.User)
	fmt.Printf("  Source:   %s\n", p.Source)
	if p.Source == config.SourceFile {
		fmt.Printf("  Input:    %s\n", p.Instances)
	}
	fmt.Printf("  Variant:  %s\n", p.Variant)
	fmt.Printf("  Masters:  %d\n", p.Masters)
	fmt.Printf("  Workers:  %d\n", p.Workers)
	fmt.Printf("  Output:   %s\n", p.Output)
	fmt.Println()

	fmt.Println("Next steps")
	fmt.Println("----------")
	if p.Source == config.SourceHCloud {
		fmt.Println("  export HCLOUD_TOKEN=<your-token>")
	}
	fmt.Printf("  machinegen generate -c %s\n", outputPath)
	fmt.Println()
}
