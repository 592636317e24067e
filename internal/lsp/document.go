package lsp

import (
	"fmt"

	"github.com/dshills/scriptlsp/internal/editor"
)

// BuildDidOpenParams snapshots the model into textDocument/didOpen parameters.
func BuildDidOpenParams(model editor.Model) DidOpenTextDocumentParams {
	return DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{
			URI:        DocumentURI(model.URI()),
			LanguageID: model.LanguageID(),
			Version:    model.VersionID(),
			Text:       model.Value(),
		},
	}
}

// BuildDidChangeParams converts an editor content change event into
// textDocument/didChange parameters. The version comes from the event, not
// the model, and the changes keep their order: servers apply them one after
// another.
func BuildDidChangeParams(model editor.Model, event editor.ContentChangedEvent) (DidChangeTextDocumentParams, error) {
	changes := make([]TextDocumentContentChangeEvent, 0, len(event.Changes))
	for i, change := range event.Changes {
		rng, err := ToLSPRange(change.Range)
		if err != nil {
			return DidChangeTextDocumentParams{}, fmt.Errorf("content change %d: %w", i, err)
		}
		changes = append(changes, TextDocumentContentChangeEvent{
			Range: &rng,
			Text:  change.Text,
		})
	}

	return DidChangeTextDocumentParams{
		TextDocument: VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: TextDocumentIdentifier{URI: DocumentURI(model.URI())},
			Version:                event.VersionID,
		},
		ContentChanges: changes,
	}, nil
}

// BuildDidCloseParams builds textDocument/didClose parameters.
func BuildDidCloseParams(model editor.Model) DidCloseTextDocumentParams {
	return DidCloseTextDocumentParams{
		TextDocument: TextDocumentIdentifier{URI: DocumentURI(model.URI())},
	}
}

// textDocumentPosition builds the common request prefix for a position.
func textDocumentPosition(model editor.Model, pos editor.Position) (TextDocumentPositionParams, error) {
	lspPos, err := ToLSPPosition(pos)
	if err != nil {
		return TextDocumentPositionParams{}, err
	}

	return TextDocumentPositionParams{
		TextDocument: TextDocumentIdentifier{URI: DocumentURI(model.URI())},
		Position:     lspPos,
	}, nil
}
