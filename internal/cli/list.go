package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/domain"
	"github.com/runoshun/bonk/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command for listing projects.
func newListCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [filter]",
		Aliases: []string{"ls"},
		GroupID: groupInspect,
		Short:   "List projects with git and task state",
		Long: `Display all projects found under the configured project directories.

Output format is tab-separated with columns:
  PROJECT, GIT, PM, TASKS

GIT shows the current branch, a * marker when the worktree is dirty,
and the ahead/behind counts against the upstream. Running tasks are
marked with their pid.

Examples:
  # List all projects
  bonk list

  # List projects whose id contains "api"
  bonk list api`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ListProjectsInput{}
			if len(args) > 0 {
				input.Filter = args[0]
			}

			uc := c.ListProjectsUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printProjectList(cmd.OutOrStdout(), out.Projects)
			return nil
		},
	}

	return cmd
}

// printProjectList prints projects in TSV format.
func printProjectList(w io.Writer, projects []*domain.Project) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "PROJECT\tGIT\tPM\tTASKS")

	// Rows
	for _, p := range projects {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.ID,
			formatGit(p.Git),
			p.PackageManager,
			formatTasks(p),
		)
	}
}

// formatGit renders a git status cell, "-" for non-repositories.
func formatGit(st *domain.GitStatus) string {
	if st == nil {
		return "-"
	}
	var b strings.Builder
	b.WriteString(st.Branch)
	if st.Dirty {
		b.WriteString("*")
	}
	if st.Ahead > 0 {
		fmt.Fprintf(&b, " +%d", st.Ahead)
	}
	if st.Behind > 0 {
		fmt.Fprintf(&b, " -%d", st.Behind)
	}
	return b.String()
}

// formatTasks renders the task cell with running markers.
func formatTasks(p *domain.Project) string {
	names := p.TaskNames()
	if len(names) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		task := p.Tasks[name]
		if task.Status == domain.StatusRunning {
			parts = append(parts, fmt.Sprintf("%s(pid %d)", name, task.PID))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
