package scripting

import (
	"github.com/dshills/scriptlsp/internal/editor"
	"github.com/dshills/scriptlsp/internal/regions"
)

// OpenTemplate builds the document for a template and the constrained
// ranges of its sections. An empty template language falls back to
// languageID.
func OpenTemplate(tpl *regions.Template, languageID string, opts ...editor.ModelOption) (*editor.TextModel, []regions.ConstrainedRange) {
	if tpl.LanguageID != "" {
		languageID = tpl.LanguageID
	}
	return editor.NewTextModel(languageID, tpl.Text(), opts...), tpl.Ranges()
}
