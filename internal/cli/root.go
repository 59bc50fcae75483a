// Package cli provides the command-line interface for bonk.
package cli

import (
	"fmt"
	"os"

	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/domain"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupInspect = "inspect"
	groupTask    = "task"
	groupOpen    = "open"
)

// NewRootCommand creates the root command for bonk.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "bonk",
		Short: "Local project launcher",
		Long: `bonk keeps track of the node and deno projects under your configured
directories. It shows their git and task state, launches dev tasks as
managed background processes, and stops them again by name.

Projects and tasks are addressed by partial name: any unambiguous
substring of a project id (like "api" for "work/api") or task name is
enough. Ambiguous names open an interactive picker.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupInspect, Title: "Inspection Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupOpen, Title: "Navigation Commands:"},
	)

	root.AddCommand(
		newListCommand(c),
		newRunCommand(c),
		newStopCommand(c),
		newCdCommand(c),
		newEditCommand(c),
	)

	// Flag misuse is a usage error, not a runtime failure
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return fmt.Errorf("%w: %v", domain.ErrUsage, err)
	})

	return root
}

// usageArgs wraps a positional-argument validator so violations print usage
// help and map to the usage exit code.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
			return fmt.Errorf("%w: %v", domain.ErrUsage, err)
		}
		return nil
	}
}

// workDir returns the caller's working directory for name resolution.
func workDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return dir, nil
}
