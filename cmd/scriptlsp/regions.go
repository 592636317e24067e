package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/scriptlsp/internal/logging"
	"github.com/dshills/scriptlsp/internal/regions"
)

var (
	regionsJSON    bool
	regionsWatch   bool
	regionsNoColor bool
)

var regionsCmd = &cobra.Command{
	Use:   "regions [template]",
	Short: "Show the constrained range of every template section",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegions,
}

func init() {
	regionsCmd.Flags().BoolVar(&regionsJSON, "json", false, "Print ranges as JSON")
	regionsCmd.Flags().BoolVarP(&regionsWatch, "watch", "w", false, "Print again whenever the template changes")
	regionsCmd.Flags().BoolVar(&regionsNoColor, "no-color", false, "Disable colored output")
}

// regionStyles holds the table color formatters.
type regionStyles struct {
	heading  *color.Color
	editable *color.Color
	readOnly *color.Color
}

func newRegionStyles(enabled bool) *regionStyles {
	s := &regionStyles{
		heading:  color.New(color.Bold),
		editable: color.New(color.FgHiGreen),
		readOnly: color.New(color.FgHiBlue),
	}
	if !enabled {
		s.heading.DisableColor()
		s.editable.DisableColor()
		s.readOnly.DisableColor()
	}
	return s
}

func runRegions(cmd *cobra.Command, args []string) error {
	path, err := templatePath(args)
	if err != nil {
		return err
	}

	tpl, err := regions.LoadTemplate(path)
	if err != nil {
		return err
	}
	if err := printRegions(cmd.OutOrStdout(), tpl); err != nil {
		return err
	}
	if !regionsWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchRegions(ctx, cmd, path)
}

func watchRegions(ctx context.Context, cmd *cobra.Command, path string) error {
	w, err := regions.NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	logger := logging.With("template", path)
	logger.Info("watching template")

	return w.Run(ctx, func(tpl *regions.Template, err error) {
		if err != nil {
			logger.Warn("reload failed", "error", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout())
		if err := printRegions(cmd.OutOrStdout(), tpl); err != nil {
			logger.Warn("print failed", "error", err)
		}
	})
}

func printRegions(out io.Writer, tpl *regions.Template) error {
	ranges := tpl.Ranges()

	if regionsJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ranges)
	}

	s := newRegionStyles(!regionsNoColor && !color.NoColor)
	s.heading.Fprintf(out, "%-4s %-10s %-17s %s\n", "#", "ACCESS", "RANGE", "CONTENT")
	for i, r := range ranges {
		access, style := "editable", s.editable
		if r.IsReadOnly {
			access, style = "read-only", s.readOnly
		}
		fmt.Fprintf(out, "%-4d ", i)
		style.Fprintf(out, "%-10s", access)
		fmt.Fprintf(out, " %-17s %s\n", r.Range(), preview(tpl.Sections[i].Content, 40))
	}
	return nil
}

// preview quotes the first limit runes of content on a single line.
func preview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) > limit {
		return fmt.Sprintf("%q...", string(runes[:limit]))
	}
	return fmt.Sprintf("%q", content)
}
