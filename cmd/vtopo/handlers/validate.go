// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/vtopo/internal/config"
	"github.com/imamik/vtopo/internal/logging"
	"github.com/imamik/vtopo/internal/topology"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// findConfigFile locates cluster.yaml when no file is given.
	findConfigFile = config.FindConfigFile

	// validateConfig reads and validates a topology document.
	validateConfig = config.Validate

	// expandTopology expands a validated document into nodes.
	expandTopology = topology.Expand

	// checkTopology verifies the expanded nodes.
	checkTopology = topology.Check

	// schemaJSON renders the document schema.
	schemaJSON = config.SchemaJSON

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = isInteractiveTTY
)

// Validate checks the topology document at path.
//
// An empty path searches for cluster.yaml from the working directory upwards.
// Validation errors are returned unchanged so callers can match [*config.ConfigError].
func Validate(ctx context.Context, path string) error {
	logger := logging.FromContext(ctx)

	path, err := resolveConfigPath(path)
	if err != nil {
		return err
	}

	logger.V(1).Info("validating topology", "path", path)

	if _, err := validateConfig(path); err != nil {
		return err
	}

	fmt.Printf("OK %s\n", path)
	return nil
}

// resolveConfigPath returns path, or the discovered cluster.yaml if path is empty.
func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	found, err := findConfigFile()
	if err != nil {
		return "", fmt.Errorf("no topology file given: %w", err)
	}
	return found, nil
}
