package lsp

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/scriptlsp/internal/editor"
)

// BuildCompletionParams builds textDocument/completion parameters for pos.
func BuildCompletionParams(model editor.Model, pos editor.Position, ctx editor.CompletionContext) (CompletionParams, error) {
	tdp, err := textDocumentPosition(model, pos)
	if err != nil {
		return CompletionParams{}, err
	}

	lspCtx, err := CompletionContextToLSP(ctx)
	if err != nil {
		return CompletionParams{}, err
	}

	return CompletionParams{
		TextDocumentPositionParams: tdp,
		Context:                    lspCtx,
	}, nil
}

// WordRange returns, in LSP space, the span of the word being completed at
// pos. Start and end come from separate word boundaries, so each is converted
// on its own.
func WordRange(model editor.Model, pos editor.Position) (Range, error) {
	word := model.WordUntilPosition(pos)

	start, err := ToLSPPosition(editor.Position{LineNumber: pos.LineNumber, Column: word.StartColumn})
	if err != nil {
		return Range{}, fmt.Errorf("word start: %w", err)
	}

	end, err := ToLSPPosition(editor.Position{LineNumber: pos.LineNumber, Column: word.EndColumn})
	if err != nil {
		return Range{}, fmt.Errorf("word end: %w", err)
	}

	return Range{Start: start, End: end}, nil
}

// ParseCompletionResult parses a completion response, which may be a bare
// item array, a CompletionList or null.
func ParseCompletionResult(data json.RawMessage) (*CompletionList, error) {
	if len(data) == 0 {
		return &CompletionList{}, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: completion result is not valid JSON", ErrInvalidResponse)
	}

	result := gjson.ParseBytes(data)
	switch {
	case result.Type == gjson.Null:
		return &CompletionList{}, nil

	case result.IsArray():
		var items []CompletionItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return &CompletionList{Items: items}, nil

	case result.IsObject():
		var list CompletionList
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return &list, nil
	}

	return nil, fmt.Errorf("%w: unexpected completion result %s", ErrInvalidResponse, result.Type)
}

// MapCompletionList converts a completion list into editor suggestions. All
// suggestions share one replacement range taken from the word at pos. The
// range of an item's textEdit is ignored; only its newText is used.
func MapCompletionList(list *CompletionList, model editor.Model, pos editor.Position) editor.CompletionResult {
	result := editor.CompletionResult{Suggestions: []editor.CompletionItem{}}
	if list == nil {
		return result
	}

	word := model.WordUntilPosition(pos)
	rng := editor.Range{
		StartLineNumber: pos.LineNumber,
		StartColumn:     word.StartColumn,
		EndLineNumber:   pos.LineNumber,
		EndColumn:       word.EndColumn,
	}

	for _, item := range list.Items {
		result.Suggestions = append(result.Suggestions, completionItemToEditor(item, rng))
	}
	result.Incomplete = list.IsIncomplete

	return result
}

// MapCompletionResult parses a raw completion response and converts it.
func MapCompletionResult(data json.RawMessage, model editor.Model, pos editor.Position) (editor.CompletionResult, error) {
	list, err := ParseCompletionResult(data)
	if err != nil {
		return editor.CompletionResult{}, err
	}
	return MapCompletionList(list, model, pos), nil
}

func completionItemToEditor(item CompletionItem, rng editor.Range) editor.CompletionItem {
	tags := CompletionItemTagsFromLSP(item.Tags)
	if item.Deprecated && !hasTag(tags, editor.CompletionItemTagDeprecated) {
		tags = append(tags, editor.CompletionItemTagDeprecated)
	}

	return editor.CompletionItem{
		Label:            item.Label,
		Kind:             CompletionItemKindFromLSP(item.Kind),
		Tags:             tags,
		Detail:           item.Detail,
		Documentation:    DocumentationFromMarkup(item.Documentation),
		SortText:         item.SortText,
		FilterText:       item.FilterText,
		Preselect:        item.Preselect,
		InsertText:       GetInsertText(item),
		InsertTextRules:  insertTextRules(item),
		Range:            rng,
		CommitCharacters: item.CommitCharacters,
	}
}

func hasTag(tags []editor.CompletionItemTag, tag editor.CompletionItemTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GetInsertText returns the text to insert for a completion item. A textEdit
// contributes its newText only; its range is not consulted.
func GetInsertText(item CompletionItem) string {
	// Prefer TextEdit if available
	if item.TextEdit != nil {
		return item.TextEdit.NewText
	}

	// Fall back to InsertText
	if item.InsertText != "" {
		return item.InsertText
	}

	// Finally use Label
	return item.Label
}

// IsSnippet returns true if the completion item uses snippet syntax.
func IsSnippet(item CompletionItem) bool {
	return item.InsertTextFormat == InsertTextFormatSnippet
}
