package editor

import "fmt"

// Position in a document expressed as 1-based line number and column.
type Position struct {
	LineNumber int `json:"lineNumber"`
	Column     int `json:"column"`
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineNumber, p.Column)
}

// Range in a document expressed as 1-based start and end positions.
type Range struct {
	StartLineNumber int `json:"startLineNumber"`
	StartColumn     int `json:"startColumn"`
	EndLineNumber   int `json:"endLineNumber"`
	EndColumn       int `json:"endColumn"`
}

// NewRange creates a range from two positions.
func NewRange(start, end Position) Range {
	return Range{
		StartLineNumber: start.LineNumber,
		StartColumn:     start.Column,
		EndLineNumber:   end.LineNumber,
		EndColumn:       end.Column,
	}
}

// Start returns the start position of the range.
func (r Range) Start() Position {
	return Position{LineNumber: r.StartLineNumber, Column: r.StartColumn}
}

// End returns the end position of the range.
func (r Range) End() Position {
	return Position{LineNumber: r.EndLineNumber, Column: r.EndColumn}
}

// IsEmpty returns true if the range has zero width.
func (r Range) IsEmpty() bool {
	return r.StartLineNumber == r.EndLineNumber && r.StartColumn == r.EndColumn
}

// ContainsRange returns true if other lies within r (inclusive on both ends).
func (r Range) ContainsRange(other Range) bool {
	return ComparePositions(other.Start(), r.Start()) >= 0 &&
		ComparePositions(other.End(), r.End()) <= 0
}

// String returns the range as "start-end".
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start(), r.End())
}

// ComparePositions returns -1 if a < b, 0 if a == b, 1 if a > b.
func ComparePositions(a, b Position) int {
	if a.LineNumber < b.LineNumber {
		return -1
	}
	if a.LineNumber > b.LineNumber {
		return 1
	}
	if a.Column < b.Column {
		return -1
	}
	if a.Column > b.Column {
		return 1
	}
	return 0
}

// ContentChange is a single replacement of the text covered by Range.
type ContentChange struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

// ContentChangedEvent reports the changes applied by one edit operation
// together with the version the model reached afterwards.
type ContentChangedEvent struct {
	Changes   []ContentChange `json:"changes"`
	VersionID int             `json:"versionId"`
}

// WordAtPosition describes a word and the columns it spans on its line.
type WordAtPosition struct {
	Word        string `json:"word"`
	StartColumn int    `json:"startColumn"`
	EndColumn   int    `json:"endColumn"`
}
