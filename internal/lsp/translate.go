package lsp

import "github.com/dshills/scriptlsp/internal/editor"

// CompletionTriggerKindToLSP maps the editor's completion trigger kind.
// Unknown values fail with an *EnumError.
func CompletionTriggerKindToLSP(kind editor.CompletionTriggerKind) (CompletionTriggerKind, error) {
	switch kind {
	case editor.CompletionTriggerKindInvoke:
		return CompletionTriggerKindInvoked, nil
	case editor.CompletionTriggerKindTriggerCharacter:
		return CompletionTriggerKindTriggerCharacter, nil
	case editor.CompletionTriggerKindTriggerForIncompleteCompletions:
		return CompletionTriggerKindTriggerForIncompleteCompletions, nil
	}
	return 0, &EnumError{Enum: "CompletionTriggerKind", Value: int(kind)}
}

// CompletionContextToLSP maps a completion context. The trigger character is
// only carried over for character-triggered completion.
func CompletionContextToLSP(ctx editor.CompletionContext) (*CompletionContext, error) {
	kind, err := CompletionTriggerKindToLSP(ctx.TriggerKind)
	if err != nil {
		return nil, err
	}

	lspCtx := &CompletionContext{TriggerKind: kind}
	if kind == CompletionTriggerKindTriggerCharacter {
		lspCtx.TriggerCharacter = ctx.TriggerCharacter
	}
	return lspCtx, nil
}

// SignatureHelpTriggerKindToLSP maps the editor's signature help trigger
// kind. Unknown values are treated as a manual invocation.
func SignatureHelpTriggerKindToLSP(kind editor.SignatureHelpTriggerKind) SignatureHelpTriggerKind {
	switch kind {
	case editor.SignatureHelpTriggerKindTriggerCharacter:
		return SignatureHelpTriggerKindTriggerCharacter
	case editor.SignatureHelpTriggerKindContentChange:
		return SignatureHelpTriggerKindContentChange
	default:
		return SignatureHelpTriggerKindInvoked
	}
}

// CompletionItemKindFromLSP maps an LSP completion item kind to the editor's
// numbering. Unknown kinds are shown as properties.
func CompletionItemKindFromLSP(kind CompletionItemKind) editor.CompletionItemKind {
	switch kind {
	case CompletionItemKindText:
		return editor.CompletionItemKindText
	case CompletionItemKindMethod:
		return editor.CompletionItemKindMethod
	case CompletionItemKindFunction:
		return editor.CompletionItemKindFunction
	case CompletionItemKindConstructor:
		return editor.CompletionItemKindConstructor
	case CompletionItemKindField:
		return editor.CompletionItemKindField
	case CompletionItemKindVariable:
		return editor.CompletionItemKindVariable
	case CompletionItemKindClass:
		return editor.CompletionItemKindClass
	case CompletionItemKindInterface:
		return editor.CompletionItemKindInterface
	case CompletionItemKindModule:
		return editor.CompletionItemKindModule
	case CompletionItemKindProperty:
		return editor.CompletionItemKindProperty
	case CompletionItemKindUnit:
		return editor.CompletionItemKindUnit
	case CompletionItemKindValue:
		return editor.CompletionItemKindValue
	case CompletionItemKindEnum:
		return editor.CompletionItemKindEnum
	case CompletionItemKindKeyword:
		return editor.CompletionItemKindKeyword
	case CompletionItemKindSnippet:
		return editor.CompletionItemKindSnippet
	case CompletionItemKindColor:
		return editor.CompletionItemKindColor
	case CompletionItemKindFile:
		return editor.CompletionItemKindFile
	case CompletionItemKindReference:
		return editor.CompletionItemKindReference
	case CompletionItemKindFolder:
		return editor.CompletionItemKindFolder
	case CompletionItemKindEnumMember:
		return editor.CompletionItemKindEnumMember
	case CompletionItemKindConstant:
		return editor.CompletionItemKindConstant
	case CompletionItemKindStruct:
		return editor.CompletionItemKindStruct
	case CompletionItemKindEvent:
		return editor.CompletionItemKindEvent
	case CompletionItemKindOperator:
		return editor.CompletionItemKindOperator
	case CompletionItemKindTypeParameter:
		return editor.CompletionItemKindTypeParameter
	default:
		return editor.CompletionItemKindProperty
	}
}

// CompletionItemTagsFromLSP maps item tags, dropping tags the editor does not know.
func CompletionItemTagsFromLSP(tags []CompletionItemTag) []editor.CompletionItemTag {
	var out []editor.CompletionItemTag
	for _, tag := range tags {
		switch tag {
		case CompletionItemTagDeprecated:
			out = append(out, editor.CompletionItemTagDeprecated)
		}
	}
	return out
}

// InsertTextRuleFromMode maps an insert text mode. adjustIndentation becomes
// KeepWhitespace; any other mode gets no whitespace handling.
func InsertTextRuleFromMode(mode InsertTextMode) editor.InsertTextRule {
	if mode == InsertTextModeAdjustIndentation {
		return editor.InsertTextRuleKeepWhitespace
	}
	return editor.InsertTextRuleNone
}

// insertTextRules combines the insert text mode and format of an item.
func insertTextRules(item CompletionItem) editor.InsertTextRule {
	rules := InsertTextRuleFromMode(item.InsertTextMode)
	if IsSnippet(item) {
		rules |= editor.InsertTextRuleInsertAsSnippet
	}
	return rules
}
