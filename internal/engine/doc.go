// Package engine contains the filesystem scanning logic for apigraveyard.
// It enumerates target files, runs the detectors in bounded batches, and
// returns structured matches. This package is internal; external
// consumers should use the stable facade in pkg/core.
package engine
