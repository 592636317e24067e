package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/scriptlsp/internal/lsp"
)

var didOpenFramed bool

var didOpenCmd = &cobra.Command{
	Use:   "didopen [template]",
	Short: "Print the textDocument/didOpen notification for a template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDidOpen,
}

func init() {
	didOpenCmd.Flags().BoolVar(&didOpenFramed, "framed", false, "Prefix the message with a Content-Length header")
}

func runDidOpen(cmd *cobra.Command, args []string) error {
	model, _, err := openDocument(args)
	if err != nil {
		return err
	}

	msg, err := notification(lsp.MethodDidOpen, lsp.BuildDidOpenParams(model))
	if err != nil {
		return err
	}
	return writeMessage(cmd.OutOrStdout(), msg, didOpenFramed)
}
