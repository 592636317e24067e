// Package scripting connects an editor document to a language server.
//
// A Session owns one document for its lifetime. Open announces it with
// textDocument/didOpen, DidChange and Edit forward content changes, Complete
// and SignatureHelp issue requests and map the answers back into editor
// space, and Close sends textDocument/didClose.
//
// The transport is abstracted behind Client. NewConnClient adapts a
// go.lsp.dev/jsonrpc2 connection; starting and wiring the server process is
// left to the caller.
package scripting
