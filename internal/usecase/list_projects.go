package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/bonk/internal/domain"
)

// ListProjectsInput contains the parameters for listing projects.
type ListProjectsInput struct {
	Filter string // Substring filter on project ids, empty = all
}

// ListProjectsOutput contains the result of listing projects.
type ListProjectsOutput struct {
	Projects []*domain.Project // Sorted by id, git status populated where available
}

// ListProjects is the use case for listing projects with their git and task
// state.
type ListProjects struct {
	config  domain.ConfigLoader
	scanner domain.ProjectScanner
	prober  domain.GitProber
}

// NewListProjects creates a new ListProjects use case.
func NewListProjects(config domain.ConfigLoader, scanner domain.ProjectScanner, prober domain.GitProber) *ListProjects {
	return &ListProjects{
		config:  config,
		scanner: scanner,
		prober:  prober,
	}
}

// Execute scans the configured roots and attaches git status to each
// project that is a repository. The git probe runs only here: plain task
// operations never pay its cost.
func (uc *ListProjects) Execute(_ context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
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

	var list []*domain.Project
	for _, p := range domain.SortedProjects(projects) {
		if in.Filter != "" && !strings.Contains(p.ID, in.Filter) {
			continue
		}
		if _, err := os.Stat(filepath.Join(p.Path, ".git")); err == nil {
			// Probe failures leave Git nil; the listing renders the
			// project without repository columns.
			p.Git, _ = uc.prober.Probe(p.Path)
		}
		list = append(list, p)
	}

	return &ListProjectsOutput{Projects: list}, nil
}
