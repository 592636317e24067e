package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/dshills/scriptlsp/internal/lsp"
)

var (
	mapLine   int
	mapColumn int
)

var mapCompletionCmd = &cobra.Command{
	Use:   "map-completion [template]",
	Short: "Convert a completion response on stdin into editor suggestions",
	Long: `Read a textDocument/completion response from stdin and print the editor
suggestions it maps to. The input may be a whole JSON-RPC response or just
its result. The position must match the one the request was made at.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMapCompletion,
}

func init() {
	addPositionFlags(mapCompletionCmd, &mapLine, &mapColumn)
}

// completionPayload extracts the completion result from a JSON-RPC response,
// or returns data unchanged when it is a bare result.
func completionPayload(data []byte) (json.RawMessage, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: input is not valid JSON", lsp.ErrInvalidResponse)
	}

	envelope := gjson.ParseBytes(data)
	if !envelope.IsObject() || !envelope.Get("jsonrpc").Exists() {
		return data, nil
	}
	if rpcErr := envelope.Get("error"); rpcErr.Exists() {
		return nil, fmt.Errorf("server error %d: %s", rpcErr.Get("code").Int(), rpcErr.Get("message").String())
	}
	return json.RawMessage(envelope.Get("result").Raw), nil
}

func runMapCompletion(cmd *cobra.Command, args []string) error {
	model, _, err := openDocument(args)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	payload, err := completionPayload(data)
	if err != nil {
		return err
	}

	result, err := lsp.MapCompletionResult(payload, model, cursor(model, mapLine, mapColumn))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
