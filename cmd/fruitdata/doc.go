// Package main hosts the fruitdata CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// catalogue operations: listing, lookup, adding, and removing fruit records
// backed by a JSON file. It centralizes configuration resolution, catalogue
// path selection, and structured logging setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: catalogue semantics live in internal/catalog and
// are surfaced here through dedicated commands.
package main
