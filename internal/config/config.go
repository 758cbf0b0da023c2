// Package config holds the configuration of the selabel tool.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio"
	"github.com/sirupsen/logrus"
)

// DefaultFileContexts is the default-label database consulted when the
// configuration does not name one.
const DefaultFileContexts = "/etc/selinux/targeted/contexts/files/file_contexts"

// Config is the selabel configuration.
type Config struct {
	// FileContexts is the path of the default-label database.
	FileContexts string `toml:"file_contexts"`

	// LogLevel is the level of the program log (trace, debug, info, warn,
	// error, fatal or panic).
	LogLevel string `toml:"log_level"`

	// LogFormat is the format of the program log ("text" or "json").
	LogFormat string `toml:"log_format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		FileContexts: DefaultFileContexts,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// UpdateFromFile overlays the configuration with the values set in the
// TOML file at path.
func (c *Config) UpdateFromFile(path string) error {
	metadata, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logrus.Warnf("Unknown keys in %s: %v", path, undecoded)
	}
	return nil
}

// ToFile writes the configuration as TOML to path, atomically.
func (c *Config) ToFile(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate checks the configuration for values the tool cannot work
// with.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("validate log level: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if !filepath.IsAbs(c.FileContexts) {
		return fmt.Errorf("file contexts path %q is not absolute", c.FileContexts)
	}
	return nil
}
