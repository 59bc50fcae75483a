package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/bonk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewCdCommand_SpawnsShell(t *testing.T) {
	// Setup
	t.Setenv("SHELL", "/bin/zsh")
	api := testProject("work/api", t.TempDir(), "dev")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})

	// Create command
	cmd := newCdCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"api"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"/bin/zsh"}, deps.Procs.ForegroundArgv)
	assert.Equal(t, api.Path, deps.Procs.ForegroundDir)
}

func TestNewEditCommand_SpawnsConfiguredEditor(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})
	deps.Loader.Cfg.Editor = "hx"

	// Create command
	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"api"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"hx"}, deps.Procs.ForegroundArgv)
	assert.Equal(t, api.Path, deps.Procs.ForegroundDir)
}

func TestNewCdCommand_RejectsExtraArgs(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	container, _ := newTestContainer(map[string]*domain.Project{api.ID: api})

	// Create command
	cmd := newCdCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"api", "extra"})

	// Execute
	err := cmd.Execute()

	// Assert: the second positional is a usage error
	assert.ErrorIs(t, err, domain.ErrUsage)
}
