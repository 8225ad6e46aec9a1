// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/imamik/vtopo/internal/logging"
)

// Root returns the root command for the vtopo CLI.
//
// Persistent flags configure logging. Every flag can also be set through a
// VTOPO_* environment variable or a vtopo.yaml settings file in the
// working directory.
func Root() *cobra.Command {
	var logOpts logging.Options

	cmd := &cobra.Command{
		Use:           "vtopo",
		Short:         "Validate and expand virtual cluster topologies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initializeConfig(cmd); err != nil {
				return err
			}

			logger, err := logging.New(logOpts)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.IntoContext(ctx, logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logOpts.Level, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logOpts.Format, "log-format", logging.FormatConsole, "Log format (console, json)")

	cmd.AddCommand(Validate())
	cmd.AddCommand(Expand())
	cmd.AddCommand(Schema())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
