package regions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a template file extension that is not supported.
var ErrUnknownFormat = errors.New("unknown template format")

// Format is the encoding of a template file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Template is a script made of editable and read-only sections.
//
// In TOML:
//
//	language_id = "python"
//
//	[[sections]]
//	editable = false
//	content = '''
//	import knime.scripting.io as knio
//	'''
//
//	[[sections]]
//	editable = true
//	content = "df = knio.input_tables[0].to_pandas()"
type Template struct {
	LanguageID string    `json:"languageId" toml:"language_id" yaml:"language_id"`
	Sections   []Section `json:"sections" toml:"sections" yaml:"sections"`
}

// Text returns the joined document text.
func (t *Template) Text() string {
	return Join(t.Sections)
}

// Ranges returns the constrained range of every section.
func (t *Template) Ranges() []ConstrainedRange {
	return Calculate(t.Sections)
}

// ParseError represents an error while parsing a template file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatFromPath picks the template format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadTemplate reads a template file, choosing the decoder by extension.
func LoadTemplate(path string) (*Template, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tpl, err := ParseTemplate(data, format)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return tpl, nil
}

// ParseTemplate decodes template data in the given format.
func ParseTemplate(data []byte, format Format) (*Template, error) {
	var tpl Template

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &tpl)
	case FormatYAML:
		err = yaml.Unmarshal(data, &tpl)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Path: "<data>", Message: err.Error(), Err: err}
	}

	return &tpl, nil
}
