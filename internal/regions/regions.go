package regions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/scriptlsp/internal/editor"
)

// ErrReadOnly indicates an edit that does not lie inside a single editable
// range.
var ErrReadOnly = errors.New("edit outside editable region")

// Section is one block of a template script.
type Section struct {
	Editable bool   `json:"isEditable" toml:"editable" yaml:"editable"`
	Content  string `json:"content" toml:"content" yaml:"content"`
}

// ConstrainedRange is the span one section occupies in the joined document.
type ConstrainedRange struct {
	StartLineNumber int  `json:"startLineNumber"`
	StartColumn     int  `json:"startColumn"`
	EndLineNumber   int  `json:"endLineNumber"`
	EndColumn       int  `json:"endColumn"`
	IsReadOnly      bool `json:"isReadOnly"`
}

// Range returns the span as an editor range.
func (r ConstrainedRange) Range() editor.Range {
	return editor.Range{
		StartLineNumber: r.StartLineNumber,
		StartColumn:     r.StartColumn,
		EndLineNumber:   r.EndLineNumber,
		EndColumn:       r.EndColumn,
	}
}

// Calculate returns the range of every section in order. Empty sections get
// a zero-width range at the current position.
func Calculate(sections []Section) []ConstrainedRange {
	ranges := make([]ConstrainedRange, 0, len(sections))

	cursor := editor.Position{LineNumber: 1, Column: 1}
	for _, section := range sections {
		end := advance(cursor, section.Content)
		ranges = append(ranges, newConstrainedRange(cursor, end, !section.Editable))
		cursor = end
	}

	return ranges
}

// advance returns the position reached by writing text at pos.
func advance(pos editor.Position, text string) editor.Position {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return editor.Position{LineNumber: pos.LineNumber, Column: pos.Column + editor.UTF16Len(text)}
	}
	return editor.Position{
		LineNumber: pos.LineNumber + len(lines) - 1,
		Column:     editor.UTF16Len(lines[len(lines)-1]) + 1,
	}
}

func newConstrainedRange(start, end editor.Position, readOnly bool) ConstrainedRange {
	return ConstrainedRange{
		StartLineNumber: start.LineNumber,
		StartColumn:     start.Column,
		EndLineNumber:   end.LineNumber,
		EndColumn:       end.Column,
		IsReadOnly:      readOnly,
	}
}

// Join concatenates the section contents into the document text.
func Join(sections []Section) string {
	var b strings.Builder
	for _, section := range sections {
		b.WriteString(section.Content)
	}
	return b.String()
}

// EditAllowed reports whether an edit of rng may be applied. It must lie
// entirely inside a single editable range; touching a read-only range at
// a shared boundary is fine.
func EditAllowed(ranges []ConstrainedRange, rng editor.Range) bool {
	return editableIndex(ranges, rng) >= 0
}

// ApplyEdit returns a copy of ranges moved to account for change. The
// editable range holding the edit grows or shrinks and every later range
// shifts with it. Edits outside an editable range fail with ErrReadOnly.
func ApplyEdit(ranges []ConstrainedRange, change editor.ContentChange) ([]ConstrainedRange, error) {
	idx := editableIndex(ranges, change.Range)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrReadOnly, change.Range)
	}

	oldEnd := change.Range.End()
	newEnd := advance(change.Range.Start(), change.Text)

	out := make([]ConstrainedRange, len(ranges))
	copy(out, ranges)
	for j := idx; j < len(out); j++ {
		rng := out[j].Range()
		start := rng.Start()
		if j > idx {
			start = shift(start, oldEnd, newEnd)
		}
		out[j] = newConstrainedRange(start, shift(rng.End(), oldEnd, newEnd), out[j].IsReadOnly)
	}

	return out, nil
}

// shift moves pos, which lies at or after oldEnd, as if the text ending at
// oldEnd now ended at newEnd.
func shift(pos, oldEnd, newEnd editor.Position) editor.Position {
	if pos.LineNumber == oldEnd.LineNumber {
		return editor.Position{LineNumber: newEnd.LineNumber, Column: newEnd.Column + pos.Column - oldEnd.Column}
	}
	return editor.Position{LineNumber: pos.LineNumber + newEnd.LineNumber - oldEnd.LineNumber, Column: pos.Column}
}

func editableIndex(ranges []ConstrainedRange, rng editor.Range) int {
	for i, r := range ranges {
		if !r.IsReadOnly && r.Range().ContainsRange(rng) {
			return i
		}
	}
	return -1
}
