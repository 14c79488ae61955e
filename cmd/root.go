// Package cmd implements the CLI commands for anchorfix using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.1.0"

var rootCmd = &cobra.Command{
	Use:   "anchorfix",
	Short: "anchorfix — renumber HTML anchors and fix same-document links",
	Long: `anchorfix rewrites heading and anchor identifiers in an HTML document
into a sequential, collision-free scheme (a0001, a0002, ...) and updates
every same-document link to match, including percent-encoded ones that
CMS exports tend to break.

Usage:
  anchorfix fix <file|dir|url> [flags]
  anchorfix report <file> [flags]`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
