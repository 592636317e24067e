package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidRange indicates an edit range whose start is after its end.
var ErrInvalidRange = errors.New("invalid range")

// Model is the document surface consumed by the LSP mapping layer.
type Model interface {
	// URI identifies the document towards the language server.
	URI() string

	// LanguageID returns the language of the document, e.g. "python".
	LanguageID() string

	// VersionID increases with every edit operation.
	VersionID() int

	// Value returns the full text of the document.
	Value() string

	// WordUntilPosition returns the part of the word before pos.
	WordUntilPosition(pos Position) WordAtPosition
}

// InMemoryScheme is the URI scheme used for models without a backing file.
const InMemoryScheme = "inmemory"

// TextModel is an in-memory Model. It is safe for concurrent use.
type TextModel struct {
	mu         sync.RWMutex
	uri        string
	languageID string
	version    int
	lines      []string
}

// ModelOption configures a TextModel.
type ModelOption func(*TextModel)

// WithURI sets the model URI instead of a generated in-memory one.
func WithURI(uri string) ModelOption {
	return func(m *TextModel) {
		m.uri = uri
	}
}

// WithScheme generates the model URI under scheme instead of inmemory.
func WithScheme(scheme string) ModelOption {
	return func(m *TextModel) {
		m.uri = NewModelURI(scheme)
	}
}

// NewModelURI returns a unique model URI of the form scheme://model/<uuid>.
func NewModelURI(scheme string) string {
	return scheme + "://model/" + uuid.NewString()
}

// WithVersion sets the initial version of the model.
func WithVersion(version int) ModelOption {
	return func(m *TextModel) {
		m.version = version
	}
}

// NewTextModel creates a model holding value. The model starts at version 1
// with a unique inmemory:// URI unless options say otherwise.
func NewTextModel(languageID, value string, opts ...ModelOption) *TextModel {
	m := &TextModel{
		uri:        NewModelURI(InMemoryScheme),
		languageID: languageID,
		version:    1,
		lines:      splitLines(value),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// URI implements Model.
func (m *TextModel) URI() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.uri
}

// LanguageID implements Model.
func (m *TextModel) LanguageID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.languageID
}

// VersionID implements Model.
func (m *TextModel) VersionID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// Value implements Model.
func (m *TextModel) Value() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return strings.Join(m.lines, "\n")
}

// LineCount returns the number of lines. An empty model has one line.
func (m *TextModel) LineCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lines)
}

// LineContent returns the text of a 1-based line without its newline.
func (m *TextModel) LineContent(lineNumber int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if lineNumber < 1 || lineNumber > len(m.lines) {
		return ""
	}
	return m.lines[lineNumber-1]
}

// FullRange returns the range covering the whole document.
func (m *TextModel) FullRange() Range {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fullRange(m.lines)
}

// ValueInRange returns the text covered by r. Positions outside the document
// are clamped to it.
func (m *TextModel) ValueInRange(r Range) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := offsetOf(m.lines, r.Start())
	end := offsetOf(m.lines, r.End())
	if start > end {
		start, end = end, start
	}
	return strings.Join(m.lines, "\n")[start:end]
}

// WordUntilPosition implements Model. When no word ends at or spans pos, the result is an empty word
// with both columns equal to pos.Column.
func (m *TextModel) WordUntilPosition(pos Position) WordAtPosition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pos = validatePosition(m.lines, pos)
	line := m.lines[pos.LineNumber-1]
	cursor := utf16ToByteOffset(line, pos.Column-1)

	for _, span := range wordSpans(line) {
		if span[0] >= cursor {
			break
		}
		if cursor <= span[1] {
			return WordAtPosition{
				Word:        line[span[0]:cursor],
				StartColumn: UTF16Len(line[:span[0]]) + 1,
				EndColumn:   pos.Column,
			}
		}
	}

	return WordAtPosition{StartColumn: pos.Column, EndColumn: pos.Column}
}

// ApplyEdits applies changes in order, each against the result of the
// previous one, and bumps the version once. Ranges are validated before
// anything is modified.
func (m *TextModel) ApplyEdits(changes []ContentChange) (ContentChangedEvent, error) {
	for _, change := range changes {
		if ComparePositions(change.Range.Start(), change.Range.End()) > 0 {
			return ContentChangedEvent{}, fmt.Errorf("%w: %s", ErrInvalidRange, change.Range)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(changes) == 0 {
		return ContentChangedEvent{VersionID: m.version}, nil
	}

	lines := m.lines
	for _, change := range changes {
		content := strings.Join(lines, "\n")
		start := offsetOf(lines, change.Range.Start())
		end := offsetOf(lines, change.Range.End())
		lines = splitLines(content[:start] + change.Text + content[end:])
	}

	m.lines = lines
	m.version++

	applied := make([]ContentChange, len(changes))
	copy(applied, changes)

	return ContentChangedEvent{Changes: applied, VersionID: m.version}, nil
}

// SetValue replaces the whole document.
func (m *TextModel) SetValue(value string) ContentChangedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	change := ContentChange{Range: fullRange(m.lines), Text: value}
	m.lines = splitLines(value)
	m.version++

	return ContentChangedEvent{Changes: []ContentChange{change}, VersionID: m.version}
}

// validatePosition clamps pos into the document.
func validatePosition(lines []string, pos Position) Position {
	if pos.LineNumber < 1 {
		return Position{LineNumber: 1, Column: 1}
	}
	if pos.LineNumber > len(lines) {
		last := len(lines)
		return Position{LineNumber: last, Column: UTF16Len(lines[last-1]) + 1}
	}

	maxColumn := UTF16Len(lines[pos.LineNumber-1]) + 1
	if pos.Column < 1 {
		pos.Column = 1
	}
	if pos.Column > maxColumn {
		pos.Column = maxColumn
	}
	return pos
}

// offsetOf converts a position to a byte offset into the joined lines.
func offsetOf(lines []string, pos Position) int {
	pos = validatePosition(lines, pos)

	offset := 0
	for i := 0; i < pos.LineNumber-1; i++ {
		offset += len(lines[i]) + 1 // +1 for newline
	}
	return offset + utf16ToByteOffset(lines[pos.LineNumber-1], pos.Column-1)
}

func fullRange(lines []string) Range {
	last := len(lines)
	return Range{
		StartLineNumber: 1,
		StartColumn:     1,
		EndLineNumber:   last,
		EndColumn:       UTF16Len(lines[last-1]) + 1,
	}
}
