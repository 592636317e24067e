// Package editor defines the editor-side view of a scripting document.
//
// The editor widget counts lines and columns from 1 and measures columns in
// UTF-16 code units. Everything in this package uses that coordinate space;
// translation to the 0-based Language Server Protocol space lives in the lsp
// package.
//
// # Model
//
// Model is the read-only surface the LSP mapping layer needs from a document:
//
//	type Model interface {
//	    URI() string
//	    LanguageID() string
//	    VersionID() int
//	    Value() string
//	    WordUntilPosition(pos Position) WordAtPosition
//	}
//
// TextModel is an in-memory implementation. Edits applied through ApplyEdits
// bump the version once per call and report a ContentChangedEvent that can be
// forwarded to a language server as a didChange notification.
package editor
