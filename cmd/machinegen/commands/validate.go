package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/machinegen/cmd/machinegen/handlers"
	"github.com/imamik/machinegen/internal/config"
)

// Validate returns the command that checks a written machines manifest.
func Validate() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a machines manifest",
		Long: `Validate a machines manifest written by generate.

The manifest may be a v1 List or a multi-document YAML stream, read from a
file or from s3://bucket/key. It must define at least one master, and every
cluster.x-k8s.io Machine must reference the ExistingInfraMachine that
follows it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := config.Defaults()
			p.ApplyEnv()
			return handlers.Validate(cmd.Context(), file, p)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", config.DefaultOutput, "Manifest file path or s3://bucket/key")

	return cmd
}
