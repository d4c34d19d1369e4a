// Package detectors implements the fixed set of API key detectors used by
// apigraveyard. Each detector reports zero or more key matches for a given
// file path and data.
package detectors
