// Package usecase contains application use cases.
package usecase

import (
	"fmt"
	"strings"

	"github.com/runoshun/bonk/internal/domain"
)

// Resolution is the outcome of mapping user-typed tokens to a concrete
// project and task.
type Resolution struct {
	Project *domain.Project
	Task    *domain.Task
	Extra   []string // Remaining tokens, forwarded to the task invocation
}

// Resolver maps partial project/task names to exactly one project and task.
//
// Precedence: an exact project id wins outright; otherwise substring matches
// are narrowed interactively. A token matching no project at all falls back
// to the current-directory project, shifting the token into the task
// position. An exact project token always beats the shift interpretation,
// even when the current project has a task of the same name.
type Resolver struct {
	disambiguator domain.Disambiguator
}

// NewResolver creates a new Resolver.
func NewResolver(disambiguator domain.Disambiguator) *Resolver {
	return &Resolver{disambiguator: disambiguator}
}

// Resolve maps args to a project, a task and the forwarded extra arguments.
// workDir is the caller's working directory, used for the inside-a-project
// default.
func (r *Resolver) Resolve(projects map[string]*domain.Project, workDir string, args []string) (*Resolution, error) {
	project, rest, err := r.resolveProject(projects, workDir, args, true)
	if err != nil {
		return nil, err
	}

	task, extra, err := r.resolveTask(project, rest)
	if err != nil {
		return nil, err
	}

	return &Resolution{Project: project, Task: task, Extra: extra}, nil
}

// ResolveProject maps at most one token to a project, without task
// resolution. Used by commands that take only a project argument; the shift
// rule does not apply because there is no task position to shift into.
func (r *Resolver) ResolveProject(projects map[string]*domain.Project, workDir string, args []string) (*domain.Project, error) {
	project, rest, err := r.resolveProject(projects, workDir, args, false)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument %q: %w", rest[0], domain.ErrUsage)
	}
	return project, nil
}

func (r *Resolver) resolveProject(projects map[string]*domain.Project, workDir string, args []string, allowShift bool) (*domain.Project, []string, error) {
	current := domain.ProjectForDir(projects, workDir)

	if len(args) == 0 {
		if current == nil {
			return nil, nil, fmt.Errorf("no project given and the current directory is not inside one: %w", domain.ErrProjectNotFound)
		}
		return current, nil, nil
	}

	token := args[0]
	if p, ok := projects[token]; ok {
		return p, args[1:], nil
	}

	matches := matchingIDs(projects, token)
	switch len(matches) {
	case 0:
		if allowShift && current != nil {
			// Argument shift: the token names a task of the current
			// project, not a project.
			return current, args, nil
		}
		return nil, nil, fmt.Errorf("%q: %w", token, domain.ErrProjectNotFound)
	case 1:
		return projects[matches[0]], args[1:], nil
	default:
		idx, err := r.disambiguator.Choose("Select a project", matches)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve project %q: %w", token, err)
		}
		return projects[matches[idx]], args[1:], nil
	}
}

func (r *Resolver) resolveTask(project *domain.Project, args []string) (*domain.Task, []string, error) {
	if len(args) == 0 {
		names := project.TaskNames()
		if len(names) == 0 {
			return nil, nil, fmt.Errorf("project %s has no tasks: %w", project.ID, domain.ErrTaskNotFound)
		}
		idx, err := r.disambiguator.Choose("Select a task", names)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve task: %w", err)
		}
		return project.Tasks[names[idx]], nil, nil
	}

	token := args[0]
	if task, ok := project.Tasks[token]; ok {
		return task, args[1:], nil
	}

	var matches []string
	for _, name := range project.TaskNames() {
		if strings.Contains(name, token) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return nil, nil, fmt.Errorf("%q in project %s: %w", token, project.ID, domain.ErrTaskNotFound)
	case 1:
		return project.Tasks[matches[0]], args[1:], nil
	default:
		idx, err := r.disambiguator.Choose("Select a task", matches)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve task %q: %w", token, err)
		}
		return project.Tasks[matches[idx]], args[1:], nil
	}
}

// matchingIDs returns the sorted project ids containing token as a
// substring.
func matchingIDs(projects map[string]*domain.Project, token string) []string {
	var ids []string
	for _, p := range domain.SortedProjects(projects) {
		if strings.Contains(p.ID, token) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
