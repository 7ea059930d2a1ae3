// Package cli defines the Cobra command tree for the agenthub CLI. Each file
// in this package registers one top-level command (add, search, validate, etc.)
// with the root command. Command implementations delegate to the catalog,
// schema, and discovery packages for business logic and only handle flag
// parsing, I/O formatting, and user interaction.
package cli
