// Package config reads and validates the cluster topology document.
//
// The document is kept as an untyped [RawConfig] mapping with one role
// block per node role (manager, replica, client). [Validate] checks every
// role block against a fixed predicate chain and fails fast with a
// [ConfigError] naming the source and the offending role. Validation is
// permissive about unknown keys; the expansion into concrete nodes lives
// in the topology package.
package config
