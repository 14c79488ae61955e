// Package cmd — fix command.
// This is the main command that orchestrates the pipeline:
// discover inputs → process → write (stdout, in-place, or output dir).
//
// It handles flag validation, config-file defaults, and URL inputs.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/anchorfix/core/anchor"
	"github.com/gaurav-prasanna/anchorfix/core/config"
	"github.com/gaurav-prasanna/anchorfix/core/fetch"
	"github.com/gaurav-prasanna/anchorfix/core/output"
	"github.com/gaurav-prasanna/anchorfix/discover"
)

// Flag variables.
var (
	flagPrefix    string
	flagWrite     bool
	flagOutputDir string
	flagRecursive bool
	flagConfig    string
)

var fixCmd = &cobra.Command{
	Use:   "fix <file|dir|url>...",
	Short: "Renumber anchors and fix internal links",
	Long: `Fix processes each input document: anchors are renumbered in document
order (a0001, a0002, ...) and every same-document fragment link is updated
to match. External links are never touched. A duplicate identifier in the
source aborts that document with no output.

Examples:
  anchorfix fix page.html
  anchorfix fix page.html --prefix sec --write
  anchorfix fix ./docs --recursive --output_dir ./fixed
  anchorfix fix https://example.com/manual.html --output_dir ./fixed`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().StringVar(&flagPrefix, "prefix", "", "Identifier prefix (default \""+anchor.DefaultPrefix+"\")")
	fixCmd.Flags().BoolVar(&flagWrite, "write", false, "Rewrite input files in place")
	fixCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Write results into this directory")
	fixCmd.Flags().BoolVar(&flagRecursive, "recursive", false, "Descend into subdirectories of directory inputs")
	fixCmd.Flags().StringVar(&flagConfig, "config", "", "Config file (default "+config.DefaultFile+" if present)")
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prefix := resolvePrefix(cfg.Prefix)
	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	if flagWrite && outputDir != "" {
		return fmt.Errorf("--write and --output_dir are mutually exclusive")
	}

	// Split URL inputs from filesystem inputs.
	var urls, paths []string
	for _, arg := range args {
		if isURL(arg) {
			urls = append(urls, arg)
		} else {
			paths = append(paths, arg)
		}
	}
	if flagWrite && len(urls) > 0 {
		return fmt.Errorf("--write cannot be used with URL inputs")
	}

	files, err := discover.Files(paths, flagRecursive)
	if err != nil {
		return err
	}

	total := len(files) + len(urls)
	if total == 0 {
		return fmt.Errorf("no HTML inputs found")
	}

	// Multiple results can't share stdout.
	toStdout := !flagWrite && outputDir == ""
	if toStdout && total > 1 {
		return fmt.Errorf("%d inputs but no destination: use --write or --output_dir", total)
	}

	var writer *output.Writer
	if outputDir != "" {
		writer, err = output.New(outputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	for _, path := range files {
		fixed, err := anchor.ProcessHTMLFile(path, prefix)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := emit(writer, path, fixed); err != nil {
			return err
		}
	}

	ctx := context.Background()
	fetcher := fetch.New()
	for _, pageURL := range urls {
		htmlText, err := fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		fixed, err := anchor.ProcessHTML(htmlText, prefix)
		if err != nil {
			return fmt.Errorf("%s: %w", pageURL, err)
		}
		if err := emit(writer, pageURL, fixed); err != nil {
			return err
		}
	}

	return nil
}

// emit routes one result to stdout, back to its source file, or into the
// output directory, matching the flags validated in runFix.
func emit(writer *output.Writer, input, fixed string) error {
	switch {
	case flagWrite:
		if err := os.WriteFile(input, []byte(fixed), 0644); err != nil {
			return fmt.Errorf("writing file %s: %w", input, err)
		}
		fmt.Fprintf(os.Stdout, "✓ Fixed: %s\n", input)
	case writer != nil:
		path, err := writer.WriteFixed(input, []byte(fixed))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	default:
		fmt.Fprint(os.Stdout, fixed)
	}
	return nil
}

// loadConfig reads --config if given, otherwise the optional default file.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	return config.LoadDefault()
}

// resolvePrefix layers flag over config over the built-in default.
func resolvePrefix(configured string) string {
	if flagPrefix != "" {
		return flagPrefix
	}
	if configured != "" {
		return configured
	}
	return anchor.DefaultPrefix
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
