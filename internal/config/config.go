package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/depdrift/internal/core"
	"github.com/indaco/depdrift/internal/workspace"
)

// DefaultConfigFile is the configuration file looked up in the working directory.
const DefaultConfigFile = ".depdrift.yaml"

// Environment variables that override the configuration file.
const (
	EnvManifest = "DEPDRIFT_MANIFEST"
	EnvJobs     = "DEPDRIFT_JOBS"
)

// ValidFormats lists the accepted report formats.
var ValidFormats = []string{"text", "table", "json"}

// Config is the main configuration structure for depdrift.
type Config struct {
	// Manifest is the path of the workspace root manifest.
	Manifest string `yaml:"manifest"`

	// Format is the default report format (text, table or json).
	Format string `yaml:"format,omitempty"`

	// Jobs bounds the number of member manifests read concurrently.
	// Zero means one per CPU.
	Jobs int `yaml:"jobs,omitempty"`

	// Sections lists the dependency tables to audit.
	Sections []string `yaml:"sections,omitempty"`

	// Ignore lists dependency names excluded from the audit.
	Ignore []string `yaml:"ignore,omitempty"`

	// FailOnConflict makes the check command exit non-zero on drift.
	FailOnConflict bool `yaml:"fail-on-conflict,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Manifest: workspace.DefaultManifestName,
		Format:   "text",
		Sections: slices.Clone(workspace.DefaultSections),
	}
}

// LoadConfigFn is a function variable so tests can substitute the loader.
var LoadConfigFn = loadConfig

// loadConfig reads configFile (if present), applies defaults and then
// environment overrides. A missing file is not an error.
func loadConfig(configFile string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fallback to defaults
	default:
		return nil, fmt.Errorf("failed to read config %q: %w", configFile, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// decode strictly decodes YAML into cfg; unknown keys are errors.
func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	return decoder.Decode(cfg)
}

func applyEnv(cfg *Config) error {
	if envPath := os.Getenv(EnvManifest); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvManifest)
		}
		cfg.Manifest = cleanPath
	}

	if envJobs := os.Getenv(EnvJobs); envJobs != "" {
		jobs, err := strconv.Atoi(envJobs)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvJobs, envJobs, err)
		}
		cfg.Jobs = jobs
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Manifest == "" {
		cfg.Manifest = workspace.DefaultManifestName
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = slices.Clone(workspace.DefaultSections)
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs cannot be negative (got %d)", c.Jobs))
	}
	if c.Format != "" && !slices.Contains(ValidFormats, c.Format) {
		errs = append(errs, fmt.Errorf("unknown format %q (expected one of %s)", c.Format, strings.Join(ValidFormats, ", ")))
	}
	for _, s := range c.Sections {
		if !workspace.IsKnownSection(s) {
			errs = append(errs, fmt.Errorf("unknown section %q (expected one of %s)", s, strings.Join(workspace.KnownSections, ", ")))
		}
	}

	return errors.Join(errs...)
}

// IsIgnored reports whether a dependency name is excluded from the audit.
func (c *Config) IsIgnored(name string) bool {
	return slices.Contains(c.Ignore, name)
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// ConfigSaver writes a configuration file with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
	}
}

// SaveTo writes cfg to configFile. When force is false an existing file is
// left untouched and an error is returned.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	file, err := s.fileOpener.OpenFile(configFile, flags, ConfigFilePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config file %q already exists (use --force to overwrite)", configFile)
		}
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}
