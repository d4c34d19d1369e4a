// Package store persists projects, keys and the banned set as a single
// JSON document. Writes are atomic (backup, temp file, rename) so a
// crash never leaves a half-written database behind.
package store
