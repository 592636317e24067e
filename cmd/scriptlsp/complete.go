package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/scriptlsp/internal/editor"
	"github.com/dshills/scriptlsp/internal/logging"
	"github.com/dshills/scriptlsp/internal/lsp"
)

var (
	completeLine       int
	completeColumn     int
	completeTrigger    string
	completeIncomplete bool
	completeRequestID  int
	completeFramed     bool
)

var completeCmd = &cobra.Command{
	Use:   "complete [template]",
	Short: "Print the textDocument/completion request at a position",
	Long: `Print the textDocument/completion request an editor sends at a position
of a template. Line and column are editor coordinates: 1-based, columns in
UTF-16 code units. Without them the end of the document is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComplete,
}

func init() {
	addPositionFlags(completeCmd, &completeLine, &completeColumn)
	completeCmd.Flags().StringVar(&completeTrigger, "trigger-char", "", "Character that triggered completion")
	completeCmd.Flags().BoolVar(&completeIncomplete, "incomplete", false, "Re-trigger for an incomplete result")
	completeCmd.Flags().IntVar(&completeRequestID, "id", 1, "JSON-RPC request id")
	completeCmd.Flags().BoolVar(&completeFramed, "framed", false, "Prefix the message with a Content-Length header")
}

func addPositionFlags(cmd *cobra.Command, line, column *int) {
	cmd.Flags().IntVar(line, "line", 0, "1-based line (default: last line)")
	cmd.Flags().IntVar(column, "column", 0, "1-based UTF-16 column (default: end of line)")
}

// cursor resolves the position flags against model.
func cursor(model *editor.TextModel, line, column int) editor.Position {
	end := model.FullRange().End()
	if line == 0 {
		line = end.LineNumber
	}
	if column == 0 {
		column = editor.UTF16Len(model.LineContent(line)) + 1
	}
	return editor.Position{LineNumber: line, Column: column}
}

func completionContext() editor.CompletionContext {
	switch {
	case completeIncomplete:
		return editor.CompletionContext{TriggerKind: editor.CompletionTriggerKindTriggerForIncompleteCompletions}
	case completeTrigger != "":
		return editor.CompletionContext{
			TriggerKind:      editor.CompletionTriggerKindTriggerCharacter,
			TriggerCharacter: completeTrigger,
		}
	default:
		return editor.CompletionContext{TriggerKind: editor.CompletionTriggerKindInvoke}
	}
}

func runComplete(cmd *cobra.Command, args []string) error {
	model, _, err := openDocument(args)
	if err != nil {
		return err
	}

	pos := cursor(model, completeLine, completeColumn)
	params, err := lsp.BuildCompletionParams(model, pos, completionContext())
	if err != nil {
		return err
	}

	if word, err := lsp.WordRange(model, pos); err == nil {
		logging.Logger().Debug("completion word", "position", pos, "range", word)
	}

	msg, err := request(completeRequestID, lsp.MethodCompletion, params)
	if err != nil {
		return err
	}
	return writeMessage(cmd.OutOrStdout(), msg, completeFramed)
}
