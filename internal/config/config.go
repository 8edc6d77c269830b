// Package config loads hdrlint settings and the library module layout.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "hdrlint.toml"

// Defaults for the library layout.
const (
	DefaultIncludeDir  = "light_mat"
	DefaultModulesFile = "tools/modules.lst"
	DefaultGuardPrefix = "LIGHTMAT"
	DefaultExtension   = ".h"
	DefaultInternalDir = "internal"
)

// Config is the decoded form of hdrlint.toml.
type Config struct {
	// Root is the library checkout. Relative paths below are resolved
	// against it.
	Root        string `toml:"root"`
	IncludeDir  string `toml:"include_dir"`
	ModulesFile string `toml:"modules_file"`
	// Modules, when set, replaces the modules file.
	Modules    []string         `toml:"modules"`
	Convention ConventionConfig `toml:"convention"`
	Scan       ScanConfig       `toml:"scan"`
}

// ConventionConfig holds the naming convention headers are checked against.
type ConventionConfig struct {
	GuardPrefix string `toml:"guard_prefix"`
	Extension   string `toml:"extension"`
	InternalDir string `toml:"internal_dir"`
}

// ScanConfig holds scan behaviour defaults that flags may override.
type ScanConfig struct {
	Parallel int      `toml:"parallel"`
	FailFast bool     `toml:"fail_fast"`
	Exclude  []string `toml:"exclude"`
	Report   string   `toml:"report"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load decodes the TOML file at path, applies defaults and validates it.
func Load(path string) (*Config, error) {
	// #nosec G304 - config path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path when it exists. A missing file yields Default;
// when required is set a missing file is an error.
func LoadOrDefault(path string, required bool) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, os.ErrNotExist) && !required {
		return Default(), nil
	}

	return nil, err
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = "."
	}

	if strings.TrimSpace(cfg.IncludeDir) == "" {
		cfg.IncludeDir = DefaultIncludeDir
	}

	if strings.TrimSpace(cfg.ModulesFile) == "" {
		cfg.ModulesFile = DefaultModulesFile
	}

	if strings.TrimSpace(cfg.Convention.GuardPrefix) == "" {
		cfg.Convention.GuardPrefix = DefaultGuardPrefix
	}

	if strings.TrimSpace(cfg.Convention.Extension) == "" {
		cfg.Convention.Extension = DefaultExtension
	}

	if strings.TrimSpace(cfg.Convention.InternalDir) == "" {
		cfg.Convention.InternalDir = DefaultInternalDir
	}

	if cfg.Scan.Parallel <= 0 {
		cfg.Scan.Parallel = 1
	}
}

// Validate reports settings that cannot be used for a scan.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Convention.Extension, ".") {
		return fmt.Errorf("convention.extension %q must start with a dot", c.Convention.Extension)
	}

	if strings.ContainsAny(c.Convention.GuardPrefix, " \t") {
		return fmt.Errorf("convention.guard_prefix %q must not contain blanks", c.Convention.GuardPrefix)
	}

	for _, name := range c.Modules {
		if strings.TrimSpace(name) == "" {
			return errors.New("modules must not contain empty names")
		}
	}

	return nil
}

// IncludePath returns the include directory resolved against Root.
func (c *Config) IncludePath() string {
	return c.resolve(c.IncludeDir)
}

// ModulesFilePath returns the modules file resolved against Root.
func (c *Config) ModulesFilePath() string {
	return c.resolve(c.ModulesFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Root, p)
}
