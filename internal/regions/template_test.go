package regions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlTemplate = `language_id = "python"

[[sections]]
editable = false
content = '''
import knime.scripting.io as knio
'''

[[sections]]
editable = true
content = "df = knio.input_tables[0].to_pandas()"
`

const yamlTemplate = `language_id: python
sections:
  - editable: false
    content: |
      import knime.scripting.io as knio
  - editable: true
    content: "df = knio.input_tables[0].to_pandas()"
`

func TestParseTemplate(t *testing.T) {
	for _, tt := range []struct {
		format Format
		data   string
	}{
		{FormatTOML, tomlTemplate},
		{FormatYAML, yamlTemplate},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			tpl, err := ParseTemplate([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "python", tpl.LanguageID)
			require.Len(t, tpl.Sections, 2)
			assert.False(t, tpl.Sections[0].Editable)
			assert.Equal(t, "import knime.scripting.io as knio\n", tpl.Sections[0].Content)
			assert.True(t, tpl.Sections[1].Editable)

			assert.Equal(t, "import knime.scripting.io as knio\ndf = knio.input_tables[0].to_pandas()", tpl.Text())
			assert.Equal(t, []ConstrainedRange{
				{1, 1, 2, 1, true},
				{2, 1, 2, 38, false},
			}, tpl.Ranges())
		})
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	_, err := ParseTemplate([]byte("sections = ["), FormatTOML)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)

	_, err = ParseTemplate([]byte("sections: [}"), FormatYAML)
	assert.ErrorAs(t, err, &perr)

	_, err = ParseTemplate([]byte(""), Format("ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":     FormatTOML,
		"dir/b.yaml": FormatYAML,
		"C.YML":      FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("script.py")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlTemplate), 0o644))

	tpl, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Len(t, tpl.Sections, 2)

	_, err = LoadTemplate(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sections: [}"), 0o644))
	_, err = LoadTemplate(bad)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, bad, perr.Path)
}
