// Package apigraveyard provides the command-line interface for the
// apigraveyard tool. It configures subcommands (scan, test, projects,
// ban, stats, tui, purge), parses flags, and executes the selected
// command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/apigraveyard/apigraveyard/cmd/apigraveyard"
//	func main() { apigraveyard.Execute() }
package apigraveyard
