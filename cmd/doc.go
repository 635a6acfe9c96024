// Package cmd implements the command-line interface for the redic
// connection core. It provides a hierarchical command structure for
// talking to a Redis server over a single connection.
//
// The package is organized into several subpackages:
//
//   - kv: Commands for issuing store operations over one connection
//     (get, set, del, ping, raw commands, benchmarking)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See redic -help for a list of all commands.
package cmd
