// Package cmd — info command.
// Prints the tool version and a runtime diagnostic block, useful when
// filing issues about platform-dependent behavior.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print version and runtime diagnostics",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "anchorfix v%s\n\n", version)
		fmt.Fprint(os.Stdout, formatRuntimeInfo())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// formatRuntimeInfo builds the diagnostic block printed by info.
func formatRuntimeInfo() string {
	out := fmt.Sprintf("Go version: %s\nPlatform:   %s/%s\nCPUs:       %d\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" {
				out += fmt.Sprintf("Revision:   %s\n", setting.Value)
				break
			}
		}
	}
	return out
}
