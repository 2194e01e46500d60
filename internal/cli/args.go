package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequirePathAndName validates the <path> <name> pair of generate and check.
// With --config set, no positional arguments are accepted. With neither, the
// command falls back to includefolder.yaml in the working directory.
func RequirePathAndName(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		if len(args) > 0 {
			return fmt.Errorf("accepts 0 arg(s) with --config, received %d", len(args))
		}
		return nil
	}
	switch len(args) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf(`missing required argument: <name>

Usage: %s

Example:
  %s ./assets assets`, cmd.UseLine(), cmd.CommandPath())
	case 2:
		return nil
	default:
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
}

// RequirePath validates that exactly one <path> argument is provided.
func RequirePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>

Usage: %s

Example:
  %s ./assets`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
