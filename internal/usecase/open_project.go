package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/bonk/internal/domain"
)

// OpenMode selects what to spawn inside the project directory.
type OpenMode string

// Open modes.
const (
	OpenShell  OpenMode = "shell"  // $SHELL, for `bonk cd`
	OpenEditor OpenMode = "editor" // configured editor, for `bonk edit`
)

// OpenProjectInput contains the parameters for opening a project.
type OpenProjectInput struct {
	WorkDir string   // Caller's working directory
	Mode    OpenMode
	Args    []string // At most one positional token: [project]
}

// OpenProjectOutput contains the result of opening a project.
type OpenProjectOutput struct {
	Project *domain.Project
}

// OpenProject spawns an interactive shell or the configured editor in a
// project directory. Read-only with respect to the registry.
type OpenProject struct {
	config   domain.ConfigLoader
	scanner  domain.ProjectScanner
	procs    domain.ProcessManager
	resolver *Resolver
}

// NewOpenProject creates a new OpenProject use case.
func NewOpenProject(
	config domain.ConfigLoader,
	scanner domain.ProjectScanner,
	procs domain.ProcessManager,
	resolver *Resolver,
) *OpenProject {
	return &OpenProject{
		config:   config,
		scanner:  scanner,
		procs:    procs,
		resolver: resolver,
	}
}

// Execute resolves the target project and blocks until the spawned shell or
// editor exits.
func (uc *OpenProject) Execute(ctx context.Context, in OpenProjectInput) (*OpenProjectOutput, error) {
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

	project, err := uc.resolver.ResolveProject(projects, in.WorkDir, in.Args)
	if err != nil {
		return nil, err
	}

	var argv []string
	switch in.Mode {
	case OpenEditor:
		argv = []string{cfg.Editor}
	default:
		shell := os.Getenv("SHELL")
		if shell == "" {
			shell = "sh"
		}
		argv = []string{shell}
	}

	if err := uc.procs.StartForeground(ctx, project.Path, argv); err != nil {
		return nil, fmt.Errorf("open %s: %w", project.ID, err)
	}
	return &OpenProjectOutput{Project: project}, nil
}
