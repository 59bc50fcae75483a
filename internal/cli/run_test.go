package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/runoshun/bonk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewRunCommand_Background(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})
	deps.Procs.BackgroundEntry = domain.Entry{PID: 4242, StartedAt: time.Now()}

	// Create command
	cmd := newRunCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-b", "api", "dev"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Started work/api dev (pid 4242)")
	assert.Equal(t, []string{"npm", "run", "dev"}, deps.Procs.BackgroundArgv)
	assert.Equal(t, api.Path, deps.Procs.BackgroundDir)

	// Recorded in the registry
	entry, ok := deps.Registry.Get("work/api", "dev")
	assert.True(t, ok)
	assert.Equal(t, 4242, entry.PID)
}

func TestNewRunCommand_ForegroundPrintsNothing(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})

	// Create command
	cmd := newRunCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"api", "dev"})

	// Execute
	err := cmd.Execute()

	// Assert: the task's own output is the foreground output
	assert.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Equal(t, 1, deps.Procs.ForegroundCalls)
	assert.Equal(t, 0, deps.Procs.BackgroundCalls)
}

func TestNewRunCommand_AlreadyRunning(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})
	_ = deps.Registry.Record("work/api", "dev", domain.Entry{PID: 77, StartedAt: time.Now()})
	deps.Procs.AlivePids[77] = true

	// Create command
	cmd := newRunCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-b", "api", "dev"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "work/api dev is already running (pid 77)")
	assert.Equal(t, 0, deps.Procs.BackgroundCalls)
}

func TestNewRunCommand_ExtraArgsForwarded(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "test")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})

	// Create command
	cmd := newRunCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	// --watch comes after the task name, so it belongs to the task
	cmd.SetArgs([]string{"api", "test", "--watch"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"npm", "run", "test", "--watch"}, deps.Procs.ForegroundArgv)
}

func TestNewRunCommand_UnknownProject(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	container, _ := newTestContainer(map[string]*domain.Project{api.ID: api})

	// Create command
	cmd := newRunCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"nosuch", "dev"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
