package cli

import (
	"fmt"

	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command for launching a task.
func newRunCommand(c *app.Container) *cobra.Command {
	var background bool

	cmd := &cobra.Command{
		Use:     "run [project] [task] [args...]",
		GroupID: groupTask,
		Short:   "Run a project task",
		Long: `Launch a task from a project's manifest.

Project and task accept partial names. When run from inside a project
directory the project token may be omitted; the first token is then
taken as the task name. With no task token an interactive picker lists
the project's tasks. Tokens after the task are passed to the task
untouched.

With --background the task is detached from the terminal, survives
bonk exiting, and is recorded so that "bonk list" shows it as running
and "bonk stop" can terminate it.

Examples:
  # Run the dev task of the api project in the foreground
  bonk run api dev

  # Same, detached
  bonk run -b api dev

  # From inside a project directory, pick a task interactively
  bonk run

  # Forward arguments to the task
  bonk run api test --watch`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir()
			if err != nil {
				return err
			}

			uc := c.RunTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RunTaskInput{
				WorkDir:    dir,
				Args:       args,
				Background: background,
			})
			if err != nil {
				return err
			}

			switch {
			case out.AlreadyRunning:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s is already running (pid %d)\n",
					out.Project.ID, out.Task.Name, out.PID)
			case background:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started %s %s (pid %d)\n",
					out.Project.ID, out.Task.Name, out.PID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&background, "background", "b", false, "Detach and keep running after bonk exits")
	// Tokens after the task name belong to the task, not to bonk
	cmd.Flags().SetInterspersed(false)

	return cmd
}
