package lsp

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/scriptlsp/internal/editor"
)

// BuildSignatureHelpParams builds textDocument/signatureHelp parameters for pos.
func BuildSignatureHelpParams(model editor.Model, pos editor.Position, ctx editor.SignatureHelpContext) (SignatureHelpParams, error) {
	tdp, err := textDocumentPosition(model, pos)
	if err != nil {
		return SignatureHelpParams{}, err
	}

	kind := SignatureHelpTriggerKindToLSP(ctx.TriggerKind)
	lspCtx := &SignatureHelpContext{
		TriggerKind:         kind,
		IsRetrigger:         ctx.IsRetrigger,
		ActiveSignatureHelp: signatureHelpToLSP(ctx.ActiveSignatureHelp),
	}
	if kind == SignatureHelpTriggerKindTriggerCharacter {
		lspCtx.TriggerCharacter = ctx.TriggerCharacter
	}

	return SignatureHelpParams{
		TextDocumentPositionParams: tdp,
		Context:                    lspCtx,
	}, nil
}

// ParseSignatureHelp parses a signature help response. A null response
// yields nil without error.
func ParseSignatureHelp(data json.RawMessage) (*SignatureHelp, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: signature help is not valid JSON", ErrInvalidResponse)
	}

	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		return nil, nil
	}
	if !result.IsObject() {
		return nil, fmt.Errorf("%w: unexpected signature help %s", ErrInvalidResponse, result.Type)
	}

	var help SignatureHelp
	if err := json.Unmarshal(data, &help); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &help, nil
}

// MapSignatureHelp converts signature help into the editor's shape. Missing
// active indices default to 0.
func MapSignatureHelp(help *SignatureHelp) *editor.SignatureHelpResult {
	if help == nil {
		return nil
	}

	result := &editor.SignatureHelpResult{
		Signatures: make([]editor.SignatureInformation, 0, len(help.Signatures)),
	}
	if help.ActiveSignature != nil {
		result.ActiveSignature = *help.ActiveSignature
	}
	if help.ActiveParameter != nil {
		result.ActiveParameter = *help.ActiveParameter
	}

	for _, sig := range help.Signatures {
		info := editor.SignatureInformation{
			Label:           sig.Label,
			Documentation:   DocumentationFromMarkup(sig.Documentation),
			Parameters:      make([]editor.ParameterInformation, 0, len(sig.Parameters)),
			ActiveParameter: sig.ActiveParameter,
		}
		for _, param := range sig.Parameters {
			info.Parameters = append(info.Parameters, editor.ParameterInformation{
				Label:         parameterLabelFromLSP(param.Label),
				Documentation: DocumentationFromMarkup(param.Documentation),
			})
		}
		result.Signatures = append(result.Signatures, info)
	}

	return result
}

// MapSignatureHelpResult parses a raw signature help response and converts it.
func MapSignatureHelpResult(data json.RawMessage) (*editor.SignatureHelpResult, error) {
	help, err := ParseSignatureHelp(data)
	if err != nil {
		return nil, err
	}
	return MapSignatureHelp(help), nil
}

// parameterLabelFromLSP decodes a label that is either a string or an
// inclusive-exclusive [start, end] offset pair.
func parameterLabelFromLSP(raw json.RawMessage) editor.ParameterLabel {
	label := gjson.ParseBytes(raw)
	if label.IsArray() {
		offsets := [2]int{int(label.Get("0").Int()), int(label.Get("1").Int())}
		return editor.ParameterLabel{Offsets: &offsets}
	}
	return editor.ParameterLabel{Text: label.String()}
}

// signatureHelpToLSP converts the editor's active signature help back for
// retriggered requests.
func signatureHelpToLSP(help *editor.SignatureHelpResult) *SignatureHelp {
	if help == nil {
		return nil
	}

	activeSignature := help.ActiveSignature
	activeParameter := help.ActiveParameter
	out := &SignatureHelp{
		Signatures:      make([]SignatureInformation, 0, len(help.Signatures)),
		ActiveSignature: &activeSignature,
		ActiveParameter: &activeParameter,
	}

	for _, sig := range help.Signatures {
		info := SignatureInformation{
			Label:           sig.Label,
			Documentation:   documentationToLSP(sig.Documentation),
			ActiveParameter: sig.ActiveParameter,
		}
		for _, param := range sig.Parameters {
			info.Parameters = append(info.Parameters, ParameterInformation{
				Label:         parameterLabelToLSP(param.Label),
				Documentation: documentationToLSP(param.Documentation),
			})
		}
		out.Signatures = append(out.Signatures, info)
	}

	return out
}

func parameterLabelToLSP(label editor.ParameterLabel) json.RawMessage {
	var data []byte
	var err error
	if label.Offsets != nil {
		data, err = json.Marshal(label.Offsets)
	} else {
		data, err = json.Marshal(label.Text)
	}
	if err != nil {
		return nil
	}
	return data
}
