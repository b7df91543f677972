// Package app holds runtime configuration and wires the dependency graph
// for the CLI.
package app
