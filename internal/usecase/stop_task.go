package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/bonk/internal/domain"
)

// StopOutcome describes what a stop operation actually did.
type StopOutcome string

// Stop outcomes.
const (
	// OutcomeStopped means a live process group was signalled and the
	// entry cleared.
	OutcomeStopped StopOutcome = "stopped"
	// OutcomeStale means the recorded process was already dead; the
	// stale entry was cleared. Not an error: the goal was already
	// achieved.
	OutcomeStale StopOutcome = "stale"
	// OutcomeNotRunning means no entry was recorded for the task.
	OutcomeNotRunning StopOutcome = "not-running"
)

// StopTaskInput contains the parameters for stopping a task.
type StopTaskInput struct {
	WorkDir string   // Caller's working directory
	Args    []string // Positional tokens: [project] [task]
}

// StopTaskOutput contains the result of stopping a task.
type StopTaskOutput struct {
	Project *domain.Project
	Task    *domain.Task
	Outcome StopOutcome
	PID     int // Pid the termination signal was aimed at (0 if none)
}

// StopTask is the use case for terminating a background task.
type StopTask struct {
	config   domain.ConfigLoader
	scanner  domain.ProjectScanner
	registry domain.Registry
	procs    domain.ProcessManager
	resolver *Resolver
}

// NewStopTask creates a new StopTask use case.
func NewStopTask(
	config domain.ConfigLoader,
	scanner domain.ProjectScanner,
	registry domain.Registry,
	procs domain.ProcessManager,
	resolver *Resolver,
) *StopTask {
	return &StopTask{
		config:   config,
		scanner:  scanner,
		registry: registry,
		procs:    procs,
		resolver: resolver,
	}
}

// Execute resolves the target task and terminates its process group.
//
// The signal goes to the whole group, not just the recorded pid: the pid
// belongs to the package-manager wrapper, and signalling only it would
// orphan the actual workload. The registry entry is cleared unconditionally;
// signal delivery is best-effort.
func (uc *StopTask) Execute(_ context.Context, in StopTaskInput) (*StopTaskOutput, error) {
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

	entry, ok := uc.registry.Get(project.ID, task.Name)
	if !ok {
		return &StopTaskOutput{Project: project, Task: task, Outcome: OutcomeNotRunning}, nil
	}

	if !uc.procs.Alive(entry) {
		if err := uc.registry.Clear(project.ID, task.Name); err != nil {
			return nil, fmt.Errorf("clear stale registry entry: %w", err)
		}
		task.Status = domain.StatusStopped
		task.PID = 0
		return &StopTaskOutput{Project: project, Task: task, Outcome: OutcomeStale, PID: entry.PID}, nil
	}

	// Best-effort: the entry is cleared even when signal delivery cannot
	// be confirmed.
	_ = uc.procs.TerminateGroup(entry.PID)

	if err := uc.registry.Clear(project.ID, task.Name); err != nil {
		return nil, fmt.Errorf("clear registry entry: %w", err)
	}
	task.Status = domain.StatusStopped
	task.PID = 0
	return &StopTaskOutput{Project: project, Task: task, Outcome: OutcomeStopped, PID: entry.PID}, nil
}
