// Package naming provides consistent hostnames for topology nodes.
//
// The manager keeps its configured hostname verbatim; numbered groups
// append the 1-based decimal index directly to the configured base name
// ("node" becomes "node1", "node2", ...).
package naming
