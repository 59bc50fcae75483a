// Package scanner discovers projects under the configured root directories.
package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/bonk/internal/domain"
	"github.com/tidwall/gjson"
)

// Manifest and lockfile names that drive classification.
const (
	denoManifest      = "deno.json"
	denoManifestJSONC = "deno.jsonc"
	nodeManifest      = "package.json"
	yarnLockfile      = "yarn.lock"
	pnpmLockfile      = "pnpm-lock.yaml"
)

// Ensure Scanner implements domain.ProjectScanner.
var _ domain.ProjectScanner = (*Scanner)(nil)

// Scanner walks root directories and classifies their immediate
// subdirectories as projects. Task statuses are cross-referenced against the
// registry and the liveness probe at scan time.
type Scanner struct {
	registry domain.Registry
	procs    domain.ProcessManager
	logger   *slog.Logger
	home     string
}

// New creates a Scanner anchored at the given home directory.
func New(home string, registry domain.Registry, procs domain.ProcessManager, logger *slog.Logger) *Scanner {
	return &Scanner{
		home:     home,
		registry: registry,
		procs:    procs,
		logger:   logger,
	}
}

// Scan walks the given roots and returns the discovered projects keyed by
// project ID. A missing root or an unreadable manifest is logged as a
// warning and skipped; scanning continues for the remaining candidates.
func (s *Scanner) Scan(roots []string) (map[string]*domain.Project, error) {
	projects := make(map[string]*domain.Project)
	for _, root := range roots {
		rootPath := filepath.Join(s.home, root)
		entries, err := os.ReadDir(rootPath)
		if err != nil {
			s.logger.Warn("skipping project directory", "dir", root, "err", err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			project := s.classify(root, entry.Name(), filepath.Join(rootPath, entry.Name()))
			if project == nil {
				continue
			}
			s.markRunning(project)
			projects[project.ID] = project
		}
	}
	return projects, nil
}

// classify inspects a candidate directory and builds a Project, or returns
// nil when the directory carries no recognized runtime manifest.
func (s *Scanner) classify(root, folder, path string) *domain.Project {
	id := domain.ProjectID(root, folder)

	for _, name := range []string{denoManifest, denoManifestJSONC} {
		manifest := filepath.Join(path, name)
		if _, err := os.Stat(manifest); err != nil {
			continue
		}
		tasks, err := readTasks(manifest, "tasks")
		if err != nil {
			s.logger.Warn("skipping project", "project", id, "err", err)
			return nil
		}
		return &domain.Project{
			ID:             id,
			Path:           path,
			Runtime:        domain.RuntimeDeno,
			PackageManager: domain.PMDeno,
			Tasks:          tasks,
		}
	}

	manifest := filepath.Join(path, nodeManifest)
	if _, err := os.Stat(manifest); err != nil {
		return nil // not a project
	}
	tasks, err := readTasks(manifest, "scripts")
	if err != nil {
		s.logger.Warn("skipping project", "project", id, "err", err)
		return nil
	}
	return &domain.Project{
		ID:             id,
		Path:           path,
		Runtime:        domain.RuntimeNode,
		PackageManager: nodePackageManager(path),
		Tasks:          tasks,
	}
}

// nodePackageManager detects the package manager from lockfiles.
// Yarn takes precedence over pnpm when both lockfiles are present.
func nodePackageManager(path string) domain.PackageManager {
	if _, err := os.Stat(filepath.Join(path, yarnLockfile)); err == nil {
		return domain.PMYarn
	}
	if _, err := os.Stat(filepath.Join(path, pnpmLockfile)); err == nil {
		return domain.PMPnpm
	}
	return domain.PMNpm
}

// readTasks extracts the named task table from a manifest file. Deno task
// values may be objects carrying a "command" field; Node scripts are plain
// strings.
func readTasks(manifest, field string) (map[string]*domain.Task, error) {
	data, err := os.ReadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if filepath.Ext(manifest) == ".jsonc" {
		data = stripComments(data)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse manifest %s: invalid JSON", manifest)
	}

	tasks := make(map[string]*domain.Task)
	gjson.GetBytes(data, field).ForEach(func(key, value gjson.Result) bool {
		command := value.String()
		if value.IsObject() {
			command = value.Get("command").String()
		}
		name := key.String()
		tasks[name] = &domain.Task{
			Name:    name,
			Command: command,
			Status:  domain.StatusStopped,
		}
		return true
	})
	return tasks, nil
}

// stripComments blanks // and /* */ comments outside string literals so a
// deno.jsonc manifest parses as plain JSON. Byte positions are preserved.
func stripComments(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	inString, inLine, inBlock := false, false, false
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case inLine:
			if c == '\n' {
				inLine = false
			} else {
				out[i] = ' '
			}
		case inBlock:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				inBlock = false
			} else if c != '\n' {
				out[i] = ' '
			}
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			out[i], out[i+1] = ' ', ' '
			i++
			inLine = true
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			out[i], out[i+1] = ' ', ' '
			i++
			inBlock = true
		}
	}
	return out
}

// markRunning flips tasks with a live registered process to running. Stale
// entries are left in place; only an explicit stop or relaunch prunes them.
func (s *Scanner) markRunning(project *domain.Project) {
	for name, entry := range s.registry.Tasks(project.ID) {
		task, ok := project.Tasks[name]
		if !ok {
			continue
		}
		if s.procs.Alive(entry) {
			task.Status = domain.StatusRunning
			task.PID = entry.PID
			task.StartedAt = entry.StartedAt
		}
	}
}
