package config

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/scriptlsp/internal/config/loader"
	"github.com/dshills/scriptlsp/internal/editor"
	"github.com/dshills/scriptlsp/internal/logging"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "SCRIPTLSP_"

// Keys lists every setting path.
var Keys = []string{
	"editor.language_id",
	"editor.uri_scheme",
	"logging.level",
	"template.path",
}

// Config holds the resolved settings.
type Config struct {
	Editor   EditorConfig   `toml:"editor"`
	Logging  LoggingConfig  `toml:"logging"`
	Template TemplateConfig `toml:"template"`
}

// EditorConfig describes the documents handed to the language server.
type EditorConfig struct {
	LanguageID string `toml:"language_id"`
	URIScheme  string `toml:"uri_scheme"`
}

// LoggingConfig configures the shared logger.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// TemplateConfig points at the template script to work on.
type TemplateConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			LanguageID: "python",
			URIScheme:  editor.InMemoryScheme,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

type loadOptions struct {
	fs        loader.FileSystem
	envPrefix string
}

// Option configures Load.
type Option func(*loadOptions)

// WithFS reads the config file through fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvPrefix overrides EnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// Load resolves the settings from defaults, the TOML file at path and the
// environment. An empty path or a missing file leaves the file layer empty.
func Load(path string, opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:        loader.DefaultFS(),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var fileLayer map[string]any
	if path != "" {
		var err error
		fileLayer, err = loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
	}

	envLayer, err := loader.NewEnvLoader(o.envPrefix, Keys...).Load()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := cfg.apply(loader.DeepMerge(fileLayer, envLayer)); err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes a settings map over c, leaving absent keys untouched.
func (c *Config) apply(settings map[string]any) error {
	if len(settings) == 0 {
		return nil
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, strict.String())
		}
		return fmt.Errorf("decoding settings: %w", err)
	}
	return nil
}

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	if c.Editor.LanguageID == "" {
		return &ValidationError{Path: "editor.language_id", Message: "must not be empty", Value: c.Editor.LanguageID}
	}
	if !schemePattern.MatchString(c.Editor.URIScheme) {
		return &ValidationError{Path: "editor.uri_scheme", Message: "not a valid URI scheme", Value: c.Editor.URIScheme}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Path: "logging.level", Message: err.Error(), Value: c.Logging.Level}
	}
	return nil
}
