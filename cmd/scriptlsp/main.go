// Command scriptlsp inspects template scripts and the LSP traffic a
// scripting editor exchanges with a language server for them.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
