package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/scriptlsp/internal/config"
	"github.com/dshills/scriptlsp/internal/logging"
)

var (
	configPath string
	logLevel   string
	languageID string
	modelURI   string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "scriptlsp",
	Short: "Coordinate mapping between a scripting editor and a language server",
	Long: `scriptlsp maps editor documents, positions and completion payloads to the
Language Server Protocol and back.

Template scripts are made of editable and read-only sections. The regions
command shows where each section ends up in the joined document; didopen and
complete print the JSON-RPC messages an editor would send for a template;
map-completion turns a server response into editor suggestions.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to scriptlsp.toml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVarP(&languageID, "language", "l", "", "Language id when the template has none")
	rootCmd.PersistentFlags().StringVar(&modelURI, "uri", "", "Document URI instead of a generated one")

	// Add subcommands
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(didOpenCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(mapCompletionCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration; flags given on the command line
// override the file and environment.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.Logging.Level = logLevel
	}
	if flags.Changed("language") {
		loaded.Editor.LanguageID = languageID
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cmd.ErrOrStderr(), loaded.Logging.Level); err != nil {
		return err
	}
	cfg = loaded

	logging.Logger().Debug("configuration loaded", "path", configPath, "language", cfg.Editor.LanguageID)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
