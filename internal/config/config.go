// Package config loads and validates the scanbook YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mtoscano/scanbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidTimeout = errors.New("invalid pdf timeout")
)

// Field length limits.
const (
	MaxTitleLength   = 200  // Viewer title
	MaxLangLength    = 35   // BCP 47 upper bound
	MaxPathLength    = 4096 // Directory and output paths
	MaxTimeoutLength = 30   // Duration string like "90s"
)

// Config holds all configuration for viewer generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Viewer ViewerConfig `yaml:"viewer"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// InputConfig defines the source directories.
type InputConfig struct {
	ImageDir string `yaml:"imageDir"` // Scanned JPEG directory (empty = flag or prompt)
	TextDir  string `yaml:"textDir"`  // Transcription directory (empty = flag or prompt)
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"` // Output file (empty = viewer.html in the working directory)
}

// ViewerConfig defines presentation options.
type ViewerConfig struct {
	Title    string `yaml:"title"`    // Viewer title (empty = default)
	Lang     string `yaml:"lang"`     // Document language tag (empty = "en")
	Markdown bool   `yaml:"markdown"` // Render transcriptions as Markdown
}

// PDFConfig defines the optional PDF companion.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Render budget, e.g. "90s" (empty = default)
}

// DefaultConfig returns a config with zero-value settings; empty fields
// fall back to flags, prompts, or built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-provided by design
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigPath returns the user config location
// (~/.config/scanbook/config.yaml) and whether it exists.
func DefaultConfigPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(home, ".config", "scanbook", "config.yaml")
	info, err := os.Stat(path)
	return path, err == nil && !info.IsDir()
}

// Validate checks field lengths and the timeout format. Called
// automatically by LoadConfig, but available for consumers that
// construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.imageDir", c.Input.ImageDir, MaxPathLength},
		{"input.textDir", c.Input.TextDir, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"viewer.title", c.Viewer.Title, MaxTitleLength},
		{"viewer.lang", c.Viewer.Lang, MaxLangLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}

	if c.PDF.Timeout != "" {
		if d, err := time.ParseDuration(c.PDF.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, c.PDF.Timeout)
		}
	}
	return nil
}
