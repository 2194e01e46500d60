package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/includefolder/internal/tui"
)

var checkFlags targetFlags

func resetCheckFlags() {
	checkFlags = targetFlags{}
}

var checkCmd = &cobra.Command{
	Use:   "check [<path> <name>]",
	Short: "Verify generated files are up to date",
	Long: `Check regenerates every target in memory and compares the result with the
file on disk. It exits with code 12 when any file is missing or differs,
which makes it suitable for CI.`,
	Example: `  includefolder check ./assets assets
  includefolder check --config includefolder.yaml`,
	Args:              RequirePathAndName,
	ValidArgsFunction: completePathThenName,
	RunE:              runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addTargetFlags(checkCmd, &checkFlags)
}

func runCheck(cmd *cobra.Command, args []string) error {
	reqs, err := resolveRequests(args, checkFlags)
	if err != nil {
		return err
	}

	svc, _ := newGenerationService(getVerboseFlag(cmd))
	out := cmd.ErrOrStderr()

	var errs []error
	for _, req := range reqs {
		if _, err := svc.Check(req); err != nil {
			fmt.Fprintf(out, "%s %s\n", tui.ErrorStyle.Render(tui.SymbolCross), req.Output)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), req.Output)
	}
	return errors.Join(errs...)
}
