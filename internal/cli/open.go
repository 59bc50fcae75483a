package cli

import (
	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/usecase"
	"github.com/spf13/cobra"
)

// newCdCommand creates the cd command for opening a shell in a project.
func newCdCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cd [project]",
		GroupID: groupOpen,
		Short:   "Open a shell in a project directory",
		Long: `Spawn $SHELL with a project directory as its working directory.

The parent process cannot change the caller's directory, so bonk opens
a nested shell instead; exit it to return to where you were. With no
argument an interactive picker lists all projects.

Examples:
  # Shell into the api project
  bonk cd api

  # Pick a project interactively
  bonk cd`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return openProject(cmd, c, usecase.OpenShell, args)
		},
	}

	return cmd
}

// newEditCommand creates the edit command for opening a project in the editor.
func newEditCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [project]",
		GroupID: groupOpen,
		Short:   "Open a project in the configured editor",
		Long: `Launch the configured editor with a project directory as its working
directory. The editor comes from the "editor" field of config.json.

Examples:
  # Edit the api project
  bonk edit api`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return openProject(cmd, c, usecase.OpenEditor, args)
		},
	}

	return cmd
}

func openProject(cmd *cobra.Command, c *app.Container, mode usecase.OpenMode, args []string) error {
	dir, err := workDir()
	if err != nil {
		return err
	}

	uc := c.OpenProjectUseCase()
	_, err = uc.Execute(cmd.Context(), usecase.OpenProjectInput{
		WorkDir: dir,
		Mode:    mode,
		Args:    args,
	})
	return err
}
