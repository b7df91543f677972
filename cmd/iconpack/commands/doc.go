// Package commands defines the iconpack CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - import       Import one directory as a single collection
//   - import-tree  Import every qualifying directory under a root, one
//     collection per directory
//
// # Implementation
//
// The root command parses env configuration and builds the dependency graph
// (diagnostics reporter, importer service, collection store) before any
// subcommand runs, so handlers share one app context.
package commands
