package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vtopo/cmd/vtopo/handlers"
)

// Schema returns the command that prints the JSON schema of the topology document.
func Schema() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the topology file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Schema(cmd.Context())
		},
	}
}
