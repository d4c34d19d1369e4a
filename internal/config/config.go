package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Every field is a
// pointer so an absent key is distinguishable from a zero value when
// layering global, local and CLI settings.
type FileConfig struct {
	Include   *string `yaml:"include"`
	Exclude   *string `yaml:"exclude"`
	Ignore    *string `yaml:"ignore"`
	Recursive *bool   `yaml:"recursive"`
	NoColor   *bool   `yaml:"no_color"`
	Database  *string `yaml:"database"`
	AutoSave  *bool   `yaml:"auto_save"`
	AutoTest  *bool   `yaml:"auto_test"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a project-local config file in the given root.
// It supports .apigraveyard.yml/.yaml and apigraveyard.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".apigraveyard.yml", ".apigraveyard.yaml", "apigraveyard.yml", "apigraveyard.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "apigraveyard", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Layered merges global and local config, local winning per field.
func Layered(global, local FileConfig) FileConfig {
	out := global
	if local.Include != nil {
		out.Include = local.Include
	}
	if local.Exclude != nil {
		out.Exclude = local.Exclude
	}
	if local.Ignore != nil {
		out.Ignore = local.Ignore
	}
	if local.Recursive != nil {
		out.Recursive = local.Recursive
	}
	if local.NoColor != nil {
		out.NoColor = local.NoColor
	}
	if local.Database != nil {
		out.Database = local.Database
	}
	if local.AutoSave != nil {
		out.AutoSave = local.AutoSave
	}
	if local.AutoTest != nil {
		out.AutoTest = local.AutoTest
	}
	return out
}

// PickString prefers the CLI value, then the file value, then the default.
func PickString(cli string, file *string, def string) string {
	if cli != "" {
		return cli
	}
	if file != nil {
		return *file
	}
	return def
}

// PickBool prefers an explicitly set CLI flag, then the file value, then
// the default.
func PickBool(cli bool, cliSet bool, file *bool, def bool) bool {
	if cliSet {
		return cli
	}
	if file != nil {
		return *file
	}
	return def
}

// SplitList breaks a comma-separated config value into trimmed entries.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
