package domain

import (
	"context"
	"time"
)

// ProjectScanner discovers projects under the configured root directories.
type ProjectScanner interface {
	// Scan walks the given roots (relative to the home directory) and
	// returns the discovered projects keyed by project ID. Missing roots
	// and unreadable manifests are logged and skipped, never fatal.
	Scan(roots []string) (map[string]*Project, error)
}

// ProcessManager spawns task processes and probes their liveness.
type ProcessManager interface {
	// Alive reports whether the entry still refers to a live process
	// reachable by the current user. Signal failures of any kind count
	// as dead; on Linux a recorded proc start tick that no longer
	// matches the pid counts as dead (recycled pid).
	Alive(e Entry) bool

	// StartBackground spawns argv in dir detached from the caller, with
	// all standard streams redirected away, and returns the registry
	// entry for the new process. The child outlives the invocation.
	StartBackground(ctx context.Context, dir string, argv []string) (Entry, error)

	// StartForeground runs argv in dir with the caller's standard
	// streams and blocks until it exits.
	StartForeground(ctx context.Context, dir string, argv []string) error

	// TerminateGroup sends SIGTERM to the whole process group of pid.
	// Killing only the wrapper process would orphan the real workload
	// spawned by npm/yarn/pnpm.
	TerminateGroup(pid int) error
}

// GitProber queries repository state for a project path. Implementations are
// invoked lazily, only when a listing is rendered.
type GitProber interface {
	// Probe returns the git status for a path known to contain a
	// repository. An absent upstream yields zero ahead/behind counts.
	Probe(path string) (*GitStatus, error)
}

// Disambiguator picks one of several candidates when resolution is
// ambiguous. The interactive implementation prompts the user; tests use a
// deterministic one.
type Disambiguator interface {
	// Choose returns the index of the selected candidate, or an error if
	// the user aborted or no selection is possible.
	Choose(label string, candidates []string) (int, error)
}

// ConfigLoader loads the user configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// Config is the user configuration, persisted as hand-editable JSON.
type Config struct {
	Groups      map[string][]string // Named project groupings, parsed but unused by the core
	Editor      string              // Editor command for `bonk edit`
	ProjectDirs []string            // Root directory names, relative to home
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
