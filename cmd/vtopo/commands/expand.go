package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vtopo/cmd/vtopo/handlers"
	"github.com/imamik/vtopo/internal/topology"
)

// Expand returns the command for expanding a topology document into nodes.
//
// Flags:
//
//	--ipv4-prefix: Network the node addresses are assigned from (default "192.168.56")
//	--output, -o: Output format: text, json or yaml (default "text")
func Expand() *cobra.Command {
	var opts handlers.ExpandOptions

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand a cluster topology into per-node parameters",
		Long: `Validate a cluster topology file and expand it into nodes.

Addresses are assigned from the IPv4 prefix:

  manager     <prefix>.20
  replica i   <prefix>.(30+i)
  client i    <prefix>.(100+i)

Replicas and clients are numbered from 1 by appending the index to the
configured hostname.

The expanded nodes are checked before they are printed. This is stricter
than validate: every resulting hostname must be a valid RFC 1123 host
name (letters, digits and hyphens), so a document using "my_mgr" passes
validate but fails expand.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Expand(cmd.Context(), fileArg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Prefix, "ipv4-prefix", topology.DefaultIPv4Prefix, "IPv4 prefix or CIDR for node addresses")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", handlers.OutputText, "Output format (text, json, yaml)")

	return cmd
}
