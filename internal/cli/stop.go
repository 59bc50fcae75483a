package cli

import (
	"fmt"

	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/usecase"
	"github.com/spf13/cobra"
)

// newStopCommand creates the stop command for terminating a background task.
func newStopCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stop [project] [task]",
		GroupID: groupTask,
		Short:   "Stop a background task",
		Long: `Terminate a task started with "run --background".

The termination signal goes to the task's whole process group, so the
package-manager wrapper and the processes it spawned go down together.
Stopping a task whose process already exited clears the stale record
and reports success.

Examples:
  # Stop the dev task of the api project
  bonk stop api dev

  # From inside a project directory
  bonk stop dev`,
		Args: usageArgs(cobra.MaximumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir()
			if err != nil {
				return err
			}

			uc := c.StopTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StopTaskInput{
				WorkDir: dir,
				Args:    args,
			})
			if err != nil {
				return err
			}

			switch out.Outcome {
			case usecase.OutcomeStopped:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s %s (pid %d)\n",
					out.Project.ID, out.Task.Name, out.PID)
			case usecase.OutcomeStale:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s was not running (cleared stale state)\n",
					out.Project.ID, out.Task.Name)
			case usecase.OutcomeNotRunning:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s is not running\n",
					out.Project.ID, out.Task.Name)
			}
			return nil
		},
	}

	return cmd
}
