// Package config loads arith settings from an optional YAML file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/arith/internal/syntax"
)

// EnvVar names the environment variable that overrides the config path.
const EnvVar = "ARITH_CONFIG"

// Output formats.
const (
	FormatText  = "text"
	FormatDebug = "debug"
	FormatTree  = "tree"
	FormatJSON  = "json"
	FormatDump  = "dump"
)

// Parser implementations.
const (
	ParserRecursive = "recursive"
	ParserReference = "reference"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatDebug, FormatTree, FormatJSON, FormatDump}

// Config holds the settings shared by all arith commands.
type Config struct {
	MaxDepth          int    `yaml:"max_depth"`
	MaxSteps          int    `yaml:"max_steps"`
	LenientWhitespace bool   `yaml:"lenient_whitespace"`
	BigStep           bool   `yaml:"big_step"`
	Parser            string `yaml:"parser"`
	Format            string `yaml:"format"`
	Numerals          bool   `yaml:"numerals"`
	LogLevel          string `yaml:"log_level"`
	HistoryFile       string `yaml:"history_file"`

	// Path is the file the settings were read from, if any.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxDepth: syntax.DefaultMaxDepth,
		Parser:   ParserRecursive,
		Format:   FormatText,
		LogLevel: logrus.WarnLevel.String(),
	}
}

// DefaultPath returns the per-user config file location,
// $XDG_CONFIG_HOME/arith/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "arith", "config.yaml")
}

// Load reads the YAML file at path on top of the defaults.
// Unknown keys are an error; an empty file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Find loads the config named by path, then by $ARITH_CONFIG, then the
// default location. A missing file at the default location yields the
// defaults; an explicitly named file must exist.
func Find(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path != "" {
		return Load(path)
	}

	path = DefaultPath()
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	switch c.Parser {
	case ParserRecursive, ParserReference:
	default:
		return errors.Errorf("unknown parser %q", c.Parser)
	}
	if !slices.Contains(Formats, c.Format) {
		return errors.Errorf("unknown format %q", c.Format)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
