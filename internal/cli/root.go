package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "includefolder",
	Short: "Embed a directory as a typed Go value",
	Long: `includefolder compiles a directory into Go source: one struct type per
directory, one field per file, and an accessor function returning the
populated value. Dotted file names nest, so "nested.folders.test.txt" is
reachable as assets().nested.folders.test.txt.

Run it from a //go:generate directive:

  //go:generate includefolder generate ./assets assets

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or broken internal invariant
  10 - Invalid configuration, flags or identifiers
  12 - Generated output is stale (check)
  14 - Path to embed not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
