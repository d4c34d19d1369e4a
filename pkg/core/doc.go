// Package core provides a small, stable facade over apigraveyard's
// internal scanner and tester for external integrations. It deliberately
// re-exports a narrow API surface so third-party tools can depend on a
// stable import path without exposing internal implementation packages.
//
// Example:
//
//	res := core.Scan(core.Options{Root: "."})
//	if res.Err != nil { /* handle */ }
//	_ = core.MarshalKeys(os.Stdout, res.Keys)
package core
