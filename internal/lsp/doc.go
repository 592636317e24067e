// Package lsp maps between the scripting editor and the Language Server Protocol.
//
// The editor counts lines and columns from 1; the LSP counts lines and
// characters from 0. Everything in this package is a pure transform over
// plain values. Sending the produced parameters to a server is the caller's
// job.
//
// # Coordinates
//
//	lspPos, err := lsp.ToLSPPosition(editor.Position{LineNumber: 10, Column: 12})
//	// lspPos == lsp.Position{Line: 9, Character: 11}
//
// Negative editor coordinates are rejected with ErrInvalidCoordinate rather
// than clamped.
//
// # Document Sync
//
// BuildDidOpenParams, BuildDidChangeParams and BuildDidCloseParams snapshot
// an editor.Model into textDocument/* notification parameters. Content
// changes keep their order.
//
// # Completion and Signature Help
//
// BuildCompletionParams and BuildSignatureHelpParams produce request
// parameters; MapCompletionResult and MapSignatureHelpResult turn raw server
// responses into the editor's native shapes.
//
// # Enumerations
//
// The editor and the LSP number their trigger kinds and item kinds
// differently. Completion trigger kinds are mapped strictly: an unknown value
// is an ErrUnreachableEnumValue. Signature help trigger kinds and markup kinds
// fall back to Invoked and plain text.
package lsp
