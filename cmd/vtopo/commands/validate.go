package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vtopo/cmd/vtopo/handlers"
)

// Validate returns the command for checking a topology document.
//
// The file argument is optional; without it cluster.yaml is searched for in
// the current directory and its parents.
func Validate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a cluster topology file",
		Long: `Validate a cluster topology file.

The manager, replica and client blocks must each define a hostname and
positive cpus and memory. A count, when given, must be positive.
Unknown keys are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Validate(cmd.Context(), fileArg(args))
		},
	}
}

// fileArg returns the optional file argument.
func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
