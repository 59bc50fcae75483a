package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/bonk/internal/domain"
)

// RunTaskInput contains the parameters for launching a task.
// Fields are ordered to minimize memory padding.
type RunTaskInput struct {
	WorkDir    string   // Caller's working directory
	Args       []string // Positional tokens: [project] [task] [extra...]
	Background bool     // Detach and record in the registry
}

// RunTaskOutput contains the result of launching a task.
type RunTaskOutput struct {
	Project        *domain.Project
	Task           *domain.Task
	PID            int  // Pid of the background process (0 in foreground mode)
	AlreadyRunning bool // True when a live background process was already recorded
}

// RunTask is the use case for launching a task in the foreground or as a
// managed background process.
type RunTask struct {
	config   domain.ConfigLoader
	scanner  domain.ProjectScanner
	registry domain.Registry
	procs    domain.ProcessManager
	resolver *Resolver
}

// NewRunTask creates a new RunTask use case.
func NewRunTask(
	config domain.ConfigLoader,
	scanner domain.ProjectScanner,
	registry domain.Registry,
	procs domain.ProcessManager,
	resolver *Resolver,
) *RunTask {
	return &RunTask{
		config:   config,
		scanner:  scanner,
		registry: registry,
		procs:    procs,
		resolver: resolver,
	}
}

// Execute resolves the target task and launches it.
//
// A task whose recorded process is still alive is not spawned again; the
// entry is re-recorded to refresh it and the call reports AlreadyRunning.
// On a failed background spawn the registry is left untouched, so no stale
// entry can result from that path.
func (uc *RunTask) Execute(ctx context.Context, in RunTaskInput) (*RunTaskOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if len(cfg.ProjectDirs) == 0 {
		return nil, domain.ErrNoProjectDirs
	}

	projects, err := uc.scanner.Scan(cfg.ProjectDirs)
	if err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}

	res, err := uc.resolver.Resolve(projects, in.WorkDir, in.Args)
	if err != nil {
		return nil, err
	}
	project, task := res.Project, res.Task

	if entry, ok := uc.registry.Get(project.ID, task.Name); ok && uc.procs.Alive(entry) {
		if err := uc.registry.Record(project.ID, task.Name, entry); err != nil {
			return nil, fmt.Errorf("refresh registry entry: %w", err)
		}
		task.Status = domain.StatusRunning
		task.PID = entry.PID
		task.StartedAt = entry.StartedAt
		return &RunTaskOutput{Project: project, Task: task, PID: entry.PID, AlreadyRunning: true}, nil
	}

	argv := project.PackageManager.RunArgs(task.Name, res.Extra)

	if !in.Background {
		if err := uc.procs.StartForeground(ctx, project.Path, argv); err != nil {
			return nil, fmt.Errorf("run %s %s: %w", project.ID, task.Name, err)
		}
		return &RunTaskOutput{Project: project, Task: task}, nil
	}

	entry, err := uc.procs.StartBackground(ctx, project.Path, argv)
	if err != nil {
		return nil, fmt.Errorf("launch %s %s: %w", project.ID, task.Name, err)
	}
	if err := uc.registry.Record(project.ID, task.Name, entry); err != nil {
		return nil, fmt.Errorf("record registry entry: %w", err)
	}

	task.Status = domain.StatusRunning
	task.PID = entry.PID
	task.StartedAt = entry.StartedAt
	return &RunTaskOutput{Project: project, Task: task, PID: entry.PID}, nil
}
