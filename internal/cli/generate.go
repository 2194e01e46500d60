package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/includefolder/internal/tui"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

var generateFlags struct {
	targetFlags
	stdout bool
}

func resetGenerateFlags() {
	generateFlags.targetFlags = targetFlags{}
	generateFlags.stdout = false
}

var generateCmd = &cobra.Command{
	Use:   "generate [<path> <name>]",
	Short: "Generate a Go file embedding a directory",
	Long: `Generate scans <path>, nests dotted file names, and writes a Go file
declaring one struct per directory plus an accessor function named after
the lowerCamel form of <name>.

Without arguments, every target of includefolder.yaml (or --config) is
generated in file order.

Defaults:
  --output   <snake_name>_gen.go, inside $INCLUDEFOLDER_OUTPUT_DIR if set
  --package  $INCLUDEFOLDER_PACKAGE, then $GOPACKAGE, then the output directory name
  --tags     $INCLUDEFOLDER_TAGS

Env files given with --env-file (or .env when present) are read with
godotenv; variables already set in the environment win.`,
	Example: `  includefolder generate ./assets assets
  includefolder generate ./templates Templates -o internal/web/templates_gen.go -p web
  includefolder generate --config includefolder.yaml`,
	Args:              RequirePathAndName,
	ValidArgsFunction: completePathThenName,
	RunE:              runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addTargetFlags(generateCmd, &generateFlags.targetFlags)
	generateCmd.Flags().BoolVar(&generateFlags.stdout, "stdout", false, "Write the generated source to stdout instead of a file")
}

func addTargetFlags(cmd *cobra.Command, f *targetFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default <snake_name>_gen.go)")
	cmd.Flags().StringVarP(&f.pkg, "package", "p", "", "Package clause of the generated file")
	cmd.Flags().StringVar(&f.funcName, "func", "", "Accessor function name (default lowerCamel of <name>)")
	cmd.Flags().StringVar(&f.tags, "tags", "", "//go:build expression for the generated file")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Project file listing targets (default ./"+includefolder.ConfigFileName+")")
	cmd.Flags().StringArrayVar(&f.envFiles, "env-file", nil, "Env file with INCLUDEFOLDER_* defaults (repeatable)")

	_ = cmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
	_ = cmd.RegisterFlagCompletionFunc("env-file", completeEnvFiles)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	reqs, err := resolveRequests(args, generateFlags.targetFlags)
	if err != nil {
		return err
	}

	svc, logger := newGenerationService(verbose)

	if generateFlags.stdout {
		if len(reqs) != 1 {
			return fmt.Errorf("--stdout needs exactly one target, got %d: %w", len(reqs), includefolder.ErrInvalidConfig)
		}
		res, err := svc.Generate(reqs[0])
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(res.Source)
		return err
	}

	for _, req := range reqs {
		logger.Verbose("Generating %s from %s", req.Output, req.Path)
		res, err := svc.Write(req)
		if err != nil {
			return fmt.Errorf("%s: %w", req.Name, err)
		}
		if verbose || tui.IsInteractive() {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderSummary(req.Output, res.Stats, res.Skipped))
		}
	}
	return nil
}
