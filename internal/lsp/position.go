package lsp

import (
	"fmt"

	"github.com/dshills/scriptlsp/internal/editor"
)

// ToLSPPosition converts a 1-based editor position to a 0-based LSP position.
// Negative input is rejected; it is never clamped.
func ToLSPPosition(pos editor.Position) (Position, error) {
	if pos.LineNumber < 0 {
		return Position{}, &CoordinateError{Field: "lineNumber", Value: pos.LineNumber}
	}
	if pos.Column < 0 {
		return Position{}, &CoordinateError{Field: "column", Value: pos.Column}
	}

	return Position{
		Line:      pos.LineNumber - 1,
		Character: pos.Column - 1,
	}, nil
}

// ToEditorPosition converts a 0-based LSP position to a 1-based editor position.
// It is the exact inverse of ToLSPPosition.
func ToEditorPosition(pos Position) editor.Position {
	return editor.Position{
		LineNumber: pos.Line + 1,
		Column:     pos.Character + 1,
	}
}

// ToLSPRange converts both endpoints of an editor range. The endpoints are
// neither reordered nor checked against each other.
func ToLSPRange(rng editor.Range) (Range, error) {
	start, err := ToLSPPosition(rng.Start())
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}

	end, err := ToLSPPosition(rng.End())
	if err != nil {
		return Range{}, fmt.Errorf("range end: %w", err)
	}

	return Range{Start: start, End: end}, nil
}

// ToEditorRange converts both endpoints of an LSP range.
func ToEditorRange(rng Range) editor.Range {
	return editor.NewRange(ToEditorPosition(rng.Start), ToEditorPosition(rng.End))
}
