package config

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dshills/scriptlsp/internal/config/loader"
)

const testPrefix = "SCRIPTLSP_TEST_"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.LanguageID != "python" {
		t.Errorf("LanguageID = %q, want python", cfg.Editor.LanguageID)
	}
	if cfg.Editor.URIScheme != "inmemory" {
		t.Errorf("URIScheme = %q, want inmemory", cfg.Editor.URIScheme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", WithEnvPrefix(testPrefix))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	cfg, err = Load("missing.toml", WithFS(fstest.MapFS{}), WithEnvPrefix(testPrefix))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Missing file = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	memfs := fstest.MapFS{
		"scriptlsp.toml": {Data: []byte(`
[editor]
language_id = "r"

[template]
path = "templates/r.yaml"
`)},
	}

	cfg, err := Load("scriptlsp.toml", WithFS(memfs), WithEnvPrefix(testPrefix))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor.LanguageID != "r" {
		t.Errorf("LanguageID = %q, want r", cfg.Editor.LanguageID)
	}
	if cfg.Editor.URIScheme != "inmemory" {
		t.Errorf("URIScheme = %q, want default inmemory", cfg.Editor.URIScheme)
	}
	if cfg.Template.Path != "templates/r.yaml" {
		t.Errorf("Template.Path = %q", cfg.Template.Path)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	memfs := fstest.MapFS{
		"scriptlsp.toml": {Data: []byte("[logging]\nlevel = \"info\"\n")},
	}
	t.Setenv(testPrefix+"LOGGING_LEVEL", "debug")
	t.Setenv(testPrefix+"EDITOR_URI_SCHEME", "knime")

	cfg, err := Load("scriptlsp.toml", WithFS(memfs), WithEnvPrefix(testPrefix))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Editor.URIScheme != "knime" {
		t.Errorf("URIScheme = %q, want knime", cfg.Editor.URIScheme)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(error) bool
	}{
		{
			name:    "parse error",
			content: "[editor\n",
			check: func(err error) bool {
				var perr *loader.ParseError
				return errors.As(err, &perr)
			},
		},
		{
			name:    "unknown key",
			content: "[editor]\ntab_size = 4\n",
			check:   func(err error) bool { return errors.Is(err, ErrUnknownSetting) },
		},
		{
			name:    "bad level",
			content: "[logging]\nlevel = \"chatty\"\n",
			check:   func(err error) bool { return errors.Is(err, ErrValidationFailed) },
		},
		{
			name:    "bad scheme",
			content: "[editor]\nuri_scheme = \"in memory\"\n",
			check:   func(err error) bool { return errors.Is(err, ErrValidationFailed) },
		},
		{
			name:    "wrong type",
			content: "[editor]\nlanguage_id = 3\n",
			check:   func(err error) bool { return err != nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memfs := fstest.MapFS{"scriptlsp.toml": {Data: []byte(tt.content)}}

			_, err := Load("scriptlsp.toml", WithFS(memfs), WithEnvPrefix(testPrefix))
			if !tt.check(err) {
				t.Errorf("Load() error = %v", err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := (&Config{Editor: EditorConfig{URIScheme: "inmemory"}}).Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if verr.Path != "editor.language_id" {
		t.Errorf("Path = %q, want editor.language_id", verr.Path)
	}
	if !strings.Contains(err.Error(), "editor.language_id") {
		t.Errorf("Error() = %q", err.Error())
	}
}
