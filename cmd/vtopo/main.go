// Package main is the entry point for the vtopo CLI.
//
// vtopo validates a cluster topology document (one manager, numbered
// replicas and clients) and expands it into the per-node parameters a
// provisioning tool consumes: hostname, CPUs, memory and IP address.
//
// Commands: validate, expand, schema, version.
//
// For detailed usage information, run:
//
//	vtopo --help
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/vtopo/cmd/vtopo/commands"
)

// Build metadata, overridden with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	if err := commands.Root().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "vtopo: %v\n", err)
		os.Exit(1)
	}
}
