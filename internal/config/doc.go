// Package config loads optional YAML configuration from a global file
// and a project-local file. CLI flags always win over file values.
package config
