package editor

// CompletionContext describes why the editor asked for completions.
// TriggerCharacter is only meaningful for CompletionTriggerKindTriggerCharacter.
type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter string                `json:"triggerCharacter,omitempty"`
}

// SignatureHelpContext describes why the editor asked for signature help.
type SignatureHelpContext struct {
	TriggerKind         SignatureHelpTriggerKind `json:"triggerKind"`
	TriggerCharacter    string                   `json:"triggerCharacter,omitempty"`
	IsRetrigger         bool                     `json:"isRetrigger"`
	ActiveSignatureHelp *SignatureHelpResult     `json:"activeSignatureHelp,omitempty"`
}

// Documentation is rich text attached to suggestions and signatures.
type Documentation struct {
	Kind  DocumentationKind `json:"kind"`
	Value string            `json:"value"`
}

// CompletionItem is a suggestion in the editor's native shape.
type CompletionItem struct {
	Label            string              `json:"label"`
	Kind             CompletionItemKind  `json:"kind"`
	Tags             []CompletionItemTag `json:"tags,omitempty"`
	Detail           string              `json:"detail,omitempty"`
	Documentation    *Documentation      `json:"documentation,omitempty"`
	SortText         string              `json:"sortText,omitempty"`
	FilterText       string              `json:"filterText,omitempty"`
	Preselect        bool                `json:"preselect,omitempty"`
	InsertText       string              `json:"insertText"`
	InsertTextRules  InsertTextRule      `json:"insertTextRules,omitempty"`
	Range            Range               `json:"range"`
	CommitCharacters []string            `json:"commitCharacters,omitempty"`
}

// CompletionResult is the editor's completion list.
type CompletionResult struct {
	Suggestions []CompletionItem `json:"suggestions"`
	Incomplete  bool             `json:"incomplete"`
}

// ParameterLabel is either a literal label or a [start, end) offset pair
// into the owning signature's label.
type ParameterLabel struct {
	Text    string  `json:"text,omitempty"`
	Offsets *[2]int `json:"offsets,omitempty"`
}

// ParameterInformation describes one parameter of a signature.
type ParameterInformation struct {
	Label         ParameterLabel `json:"label"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

// SignatureInformation describes one callable signature.
type SignatureInformation struct {
	Label           string                 `json:"label"`
	Documentation   *Documentation         `json:"documentation,omitempty"`
	Parameters      []ParameterInformation `json:"parameters"`
	ActiveParameter *int                   `json:"activeParameter,omitempty"`
}

// SignatureHelpResult is the editor's signature help payload.
type SignatureHelpResult struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature int                    `json:"activeSignature"`
	ActiveParameter int                    `json:"activeParameter"`
}
