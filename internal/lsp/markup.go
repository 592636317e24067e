package lsp

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/scriptlsp/internal/editor"
)

// DocumentationFromMarkup normalizes server documentation into the editor's
// shape. It accepts a bare string, a MarkupContent object or a legacy
// MarkedString ({language, value}). A missing or unknown kind means plain
// text. Empty or null input yields nil.
func DocumentationFromMarkup(raw json.RawMessage) *editor.Documentation {
	if len(raw) == 0 {
		return nil
	}

	doc := gjson.ParseBytes(raw)
	switch {
	case doc.Type == gjson.String:
		return &editor.Documentation{Kind: editor.DocumentationKindPlainText, Value: doc.String()}

	case doc.IsObject():
		value := doc.Get("value").String()

		if lang := doc.Get("language"); lang.Exists() && !doc.Get("kind").Exists() {
			return &editor.Documentation{
				Kind:  editor.DocumentationKindMarkdown,
				Value: "```" + lang.String() + "\n" + value + "\n```",
			}
		}

		kind := editor.DocumentationKindPlainText
		if MarkupKind(strings.ToLower(doc.Get("kind").String())) == MarkupKindMarkdown {
			kind = editor.DocumentationKindMarkdown
		}
		return &editor.Documentation{Kind: kind, Value: value}
	}

	return nil
}

// documentationToLSP converts editor documentation back into MarkupContent.
func documentationToLSP(doc *editor.Documentation) json.RawMessage {
	if doc == nil {
		return nil
	}

	kind := MarkupKindPlainText
	if doc.Kind == editor.DocumentationKindMarkdown {
		kind = MarkupKindMarkdown
	}

	data, err := json.Marshal(MarkupContent{Kind: kind, Value: doc.Value})
	if err != nil {
		return nil
	}
	return data
}
