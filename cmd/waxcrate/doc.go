// Package main hosts the waxcrate CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the collection store, catalog
// queries, aggregate statistics, metadata providers, and share payloads as
// terminal commands. It centralizes configuration resolution, store setup,
// and logger construction so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
