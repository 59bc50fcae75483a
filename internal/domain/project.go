// Package domain contains core business entities and interfaces.
package domain

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Runtime identifies the runtime that backs a project.
type Runtime string

// Supported runtimes.
const (
	RuntimeNode Runtime = "node"
	RuntimeDeno Runtime = "deno"
)

// PackageManager identifies the tool used to invoke a project's tasks.
type PackageManager string

// Supported package managers.
const (
	PMNpm  PackageManager = "npm"
	PMYarn PackageManager = "yarn"
	PMPnpm PackageManager = "pnpm"
	PMDeno PackageManager = "deno"
)

// RunArgs returns the argv for invoking the named task with this package
// manager. Extra user arguments are appended verbatim.
func (pm PackageManager) RunArgs(task string, extra []string) []string {
	var args []string
	switch pm {
	case PMDeno:
		args = []string{"deno", "task", task}
	case PMYarn:
		args = []string{"yarn", "run", task}
	case PMPnpm:
		args = []string{"pnpm", "run", task}
	default:
		args = []string{"npm", "run", task}
	}
	return append(args, extra...)
}

// TaskStatus is the derived state of a task at scan time.
type TaskStatus string

// Task statuses.
const (
	StatusRunning TaskStatus = "running"
	StatusStopped TaskStatus = "stopped"
)

// Task is a named, invokable script declared by a project's manifest.
// Status and PID are derived by cross-referencing the registry and the
// liveness checker; they are not authoritative on their own.
type Task struct {
	StartedAt time.Time  // When the background process was recorded (zero if unknown)
	Name      string     // Unique within the project
	Command   string     // Literal script body, informational only
	Status    TaskStatus // running or stopped
	PID       int        // Recorded pid when running, 0 otherwise
}

// Project is a directory recognized as a software project. Projects are
// rebuilt from the filesystem on every scan and never persisted.
type Project struct {
	Tasks          map[string]*Task
	Git            *GitStatus // Populated lazily, only for listings
	ID             string     // <rootDirName>/<folderName>
	Path           string     // Absolute path
	Runtime        Runtime
	PackageManager PackageManager
}

// ProjectID builds the stable identity of a project from its root directory
// name and folder name.
func ProjectID(root, folder string) string {
	return root + "/" + folder
}

// TaskNames returns the project's task names sorted alphabetically.
func (p *Project) TaskNames() []string {
	names := make([]string, 0, len(p.Tasks))
	for name := range p.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContainsPath reports whether dir lies inside the project directory
// (or is the project directory itself), respecting path boundaries so that
// "work/api" does not claim "work/api-gateway".
func (p *Project) ContainsPath(dir string) bool {
	rel, err := filepath.Rel(p.Path, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// SortedProjects returns the projects of a scan result ordered by ID.
func SortedProjects(projects map[string]*Project) []*Project {
	list := make([]*Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// ProjectForDir returns the project whose directory contains dir, or nil.
func ProjectForDir(projects map[string]*Project, dir string) *Project {
	for _, p := range projects {
		if p.ContainsPath(dir) {
			return p
		}
	}
	return nil
}
