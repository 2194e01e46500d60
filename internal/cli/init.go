package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/includefolder/internal/logging"
	"github.com/vvka-141/includefolder/internal/scaffold"
	"github.com/vvka-141/includefolder/internal/tui"
)

var initFlags struct {
	path string
	name string
	pkg  string
}

func resetInitFlags() {
	initFlags.path = "assets"
	initFlags.name = ""
	initFlags.pkg = ""
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter includefolder.yaml",
	Long: `Init writes includefolder.yaml into dir (default: the working directory)
with a single target, and creates the embedded directory if it is missing.
An existing includefolder.yaml is never overwritten.`,
	Example: `  includefolder init
  includefolder init ./web --path static --name Static`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initFlags.path, "path", "assets", "Directory to embed, relative to dir")
	initCmd.Flags().StringVar(&initFlags.name, "name", "", "Root type name (default: derived from --path)")
	initCmd.Flags().StringVarP(&initFlags.pkg, "package", "p", "", "Package name (default: derived from dir)")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	s := scaffold.NewScaffolder(logging.NewConsoleLogger(getVerboseFlag(cmd)))
	path, err := s.CreateConfig(dir, scaffold.Options{
		Path:    initFlags.path,
		Name:    initFlags.name,
		Package: initFlags.pkg,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), path)
	return nil
}
