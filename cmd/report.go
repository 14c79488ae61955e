// Package cmd — report command.
// Renders the remap table (which anchor became which) for one document,
// in exactly one of Markdown, JSON, or PDF.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/anchorfix/core"
	"github.com/gaurav-prasanna/anchorfix/core/anchor"
	"github.com/gaurav-prasanna/anchorfix/core/config"
	"github.com/gaurav-prasanna/anchorfix/core/output"
	"github.com/gaurav-prasanna/anchorfix/core/render"
)

// Flag variables.
var (
	flagReportPrefix   string
	flagReportMarkdown bool
	flagReportJSON     bool
	flagReportPDF      bool
	flagReportOutDir   string
	flagReportConfig   string
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Render the anchor remap table for a document",
	Long: `Report runs the same scan as fix but emits the remap table instead of
the rewritten document: for every anchorable element the tag, the attribute
rewritten, the old identifier, the new identifier, and a label derived from
the element's content.

Examples:
  anchorfix report page.html --markdown
  anchorfix report page.html --json --output_dir ./out
  anchorfix report page.html --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	// Output format flags (mutually exclusive).
	reportCmd.Flags().BoolVar(&flagReportMarkdown, "markdown", false, "Output Markdown")
	reportCmd.Flags().BoolVar(&flagReportJSON, "json", false, "Output structured JSON")
	reportCmd.Flags().BoolVar(&flagReportPDF, "pdf", false, "Output PDF")

	reportCmd.Flags().StringVar(&flagReportPrefix, "prefix", "", "Identifier prefix (default \""+anchor.DefaultPrefix+"\")")
	reportCmd.Flags().StringVar(&flagReportOutDir, "output_dir", "", "Output directory (default: current directory)")
	reportCmd.Flags().StringVar(&flagReportConfig, "config", "", "Config file (default "+config.DefaultFile+" if present)")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]

	var cfg *config.Config
	var err error
	if flagReportConfig != "" {
		cfg, err = config.Load(flagReportConfig)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.ReportFormat)
	if err != nil {
		return err
	}

	prefix := flagReportPrefix
	if prefix == "" {
		prefix = cfg.Prefix
	}
	if prefix == "" {
		prefix = anchor.DefaultPrefix
	}

	_, report, err := anchor.RemapFile(path, prefix)
	if err != nil {
		return err
	}

	data, err := renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	outDir := flagReportOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	writer, err := output.New(outDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	written, err := writer.WriteReport(path, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", written)
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags, falling
// back to the config file's report_format, then to Markdown.
func selectRenderer(configured string) (core.Renderer, error) {
	count := 0
	for _, set := range []bool{flagReportMarkdown, flagReportJSON, flagReportPDF} {
		if set {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagReportMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagReportJSON:
		return render.NewJSONRenderer(), nil
	case flagReportPDF:
		return render.NewPDFRenderer(), nil
	}

	switch configured {
	case "", "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", configured)
	}
}
