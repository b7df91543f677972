// Package importer turns directories of SVG files into collection records.
//
// It partitions a tree into independent icon sets, loads each set's files,
// runs every icon through validation, color canonicalization and
// optimization, and assembles the survivors into exported collections.
// Per-icon and per-directory failures are reported to the diagnostics sink
// and never abort the rest of the import.
package importer
