package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/internal/tui"
)

var inspectFlags struct {
	files bool
}

func resetInspectFlags() {
	inspectFlags.files = false
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Show the normalized tree of a directory",
	Long: `Inspect scans <path> and prints the tree after dotted-name nesting, the
shape the generated structs will have. With --files it prints the flattened
file list, the same entries Files() returns, sorted by path.`,
	Args:              RequirePath,
	ValidArgsFunction: completePath,
	RunE:              runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectFlags.files, "files", false, "Print the flattened file list instead of the tree")
}

func runInspect(cmd *cobra.Command, args []string) error {
	svc, logger := newGenerationService(getVerboseFlag(cmd))

	root, conflicts, err := svc.Load(args[0])
	if err != nil {
		return err
	}
	for _, c := range conflicts {
		logger.Info("%s overwrote %s", c.Source, c.Path)
	}

	out := cmd.OutOrStdout()
	if inspectFlags.files {
		fmt.Fprint(out, tui.RenderFiles(tree.Files(root)))
		return nil
	}
	fmt.Fprintln(out, tui.RenderTree(filepath.Base(filepath.Clean(args[0])), root))
	return nil
}
