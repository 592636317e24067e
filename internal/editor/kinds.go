package editor

// CompletionTriggerKind is the editor's reason for requesting completions.
type CompletionTriggerKind int

const (
	CompletionTriggerKindInvoke                          CompletionTriggerKind = 0
	CompletionTriggerKindTriggerCharacter                CompletionTriggerKind = 1
	CompletionTriggerKindTriggerForIncompleteCompletions CompletionTriggerKind = 2
)

// SignatureHelpTriggerKind is the editor's reason for requesting signature help.
type SignatureHelpTriggerKind int

const (
	SignatureHelpTriggerKindInvoke           SignatureHelpTriggerKind = 1
	SignatureHelpTriggerKindTriggerCharacter SignatureHelpTriggerKind = 2
	SignatureHelpTriggerKindContentChange    SignatureHelpTriggerKind = 3
)

// CompletionItemKind is the editor's icon/category for a suggestion.
// The numbering is the editor's own and does not match the LSP.
type CompletionItemKind int

const (
	CompletionItemKindMethod        CompletionItemKind = 0
	CompletionItemKindFunction      CompletionItemKind = 1
	CompletionItemKindConstructor   CompletionItemKind = 2
	CompletionItemKindField         CompletionItemKind = 3
	CompletionItemKindVariable      CompletionItemKind = 4
	CompletionItemKindClass         CompletionItemKind = 5
	CompletionItemKindStruct        CompletionItemKind = 6
	CompletionItemKindInterface     CompletionItemKind = 7
	CompletionItemKindModule        CompletionItemKind = 8
	CompletionItemKindProperty      CompletionItemKind = 9
	CompletionItemKindEvent         CompletionItemKind = 10
	CompletionItemKindOperator      CompletionItemKind = 11
	CompletionItemKindUnit          CompletionItemKind = 12
	CompletionItemKindValue         CompletionItemKind = 13
	CompletionItemKindConstant      CompletionItemKind = 14
	CompletionItemKindEnum          CompletionItemKind = 15
	CompletionItemKindEnumMember    CompletionItemKind = 16
	CompletionItemKindKeyword       CompletionItemKind = 17
	CompletionItemKindText          CompletionItemKind = 18
	CompletionItemKindColor         CompletionItemKind = 19
	CompletionItemKindFile          CompletionItemKind = 20
	CompletionItemKindReference     CompletionItemKind = 21
	CompletionItemKindCustomcolor   CompletionItemKind = 22
	CompletionItemKindFolder        CompletionItemKind = 23
	CompletionItemKindTypeParameter CompletionItemKind = 24
	CompletionItemKindUser          CompletionItemKind = 25
	CompletionItemKindIssue         CompletionItemKind = 26
	CompletionItemKindSnippet       CompletionItemKind = 27
)

// CompletionItemTag marks extra properties of a suggestion.
type CompletionItemTag int

const (
	CompletionItemTagDeprecated CompletionItemTag = 1
)

// InsertTextRule is a bit set controlling how suggestion text is inserted.
type InsertTextRule int

const (
	InsertTextRuleNone            InsertTextRule = 0
	InsertTextRuleKeepWhitespace  InsertTextRule = 1
	InsertTextRuleInsertAsSnippet InsertTextRule = 4
)

// Has reports whether all bits of flag are set.
func (r InsertTextRule) Has(flag InsertTextRule) bool {
	return r&flag == flag
}

// DocumentationKind tells the editor how to render documentation text.
type DocumentationKind string

const (
	DocumentationKindPlainText DocumentationKind = "plaintext"
	DocumentationKindMarkdown  DocumentationKind = "markdown"
)
