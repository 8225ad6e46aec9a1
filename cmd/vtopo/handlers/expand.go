package handlers

import (
	"context"
	"fmt"
	"slices"

	"github.com/imamik/vtopo/internal/logging"
	"github.com/imamik/vtopo/internal/topology"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ExpandOptions configures [Expand].
type ExpandOptions struct {
	// Prefix is the IPv4 prefix or CIDR addresses are assigned from.
	Prefix string
	// Output is one of OutputText, OutputJSON, OutputYAML.
	Output string
}

// Expand validates the topology document at path, expands it and prints the nodes.
//
// This function runs the complete pipeline:
//  1. Resolves the document path (searching for cluster.yaml if empty)
//  2. Validates every role block
//  3. Expands manager, replicas and clients with deterministic addresses
//  4. Checks hostnames and addresses for conflicts
//  5. Renders the topology as text, JSON or YAML
func Expand(ctx context.Context, path string, opts ExpandOptions) error {
	logger := logging.FromContext(ctx)

	if opts.Output == "" {
		opts.Output = OutputText
	}
	if !slices.Contains([]string{OutputText, OutputJSON, OutputYAML}, opts.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %s, %s, %s", opts.Output, OutputText, OutputJSON, OutputYAML)
	}
	if opts.Prefix == "" {
		opts.Prefix = topology.DefaultIPv4Prefix
	}

	path, err := resolveConfigPath(path)
	if err != nil {
		return err
	}

	logger.V(1).Info("validating topology", "path", path)
	cfg, err := validateConfig(path)
	if err != nil {
		return err
	}

	topo, err := expandTopology(cfg, opts.Prefix)
	if err != nil {
		return fmt.Errorf("failed to expand topology: %w", err)
	}

	if err := checkTopology(topo); err != nil {
		return fmt.Errorf("expanded topology is invalid: %w", err)
	}

	logger.V(1).Info("expanded topology",
		"path", path,
		"prefix", opts.Prefix,
		"replicas", len(topo.Replica),
		"clients", len(topo.Client),
	)

	out, err := renderTopology(path, topo, opts.Output, isTerminal())
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
