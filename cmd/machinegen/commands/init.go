package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/machinegen/cmd/machinegen/handlers"
	"github.com/imamik/machinegen/internal/config"
)

// Init returns the command for interactively creating a machinegen.yaml.
//
// Flags:
//
//	--output, -o: Path to output file (default "machinegen.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a machinegen configuration file.

The wizard asks for the user, the instance source, the manifest variant,
the number of masters and workers, and where to write the manifest.
Credentials are never written to the file; pass them through HCLOUD_TOKEN
and the MACHINEGEN_S3_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
