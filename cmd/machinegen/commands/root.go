// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Root returns the root command for the machinegen CLI.
//
// The root command installs the logger every subcommand finds in its
// context. --verbose switches to development logging with debug detail.
func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "machinegen",
		Short:         "Generate cluster Machine manifests from cloud instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := newLogger(os.Stderr, verbose)
			ctrllog.SetLogger(logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(ctrllog.IntoContext(ctx, logger))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(Generate())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// newLogger builds the CLI logger. Without verbose only warnings and errors
// are printed.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	if verbose {
		return zap.New(zap.WriteTo(w), zap.UseDevMode(true), zap.Level(zapcore.Level(-1)))
	}
	return zap.New(zap.WriteTo(w), zap.ConsoleEncoder(), zap.Level(zapcore.WarnLevel))
}
