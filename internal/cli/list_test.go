package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/bonk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCommand_PrintsProjects(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev", "test")
	api.Tasks["dev"].Status = domain.StatusRunning
	api.Tasks["dev"].PID = 4242
	cli := testProject("oss/cli", t.TempDir(), "build")
	container, _ := newTestContainer(map[string]*domain.Project{
		api.ID: api,
		cli.ID: cli,
	})

	// Create command
	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "PROJECT")
	assert.Contains(t, out, "work/api")
	assert.Contains(t, out, "oss/cli")
	assert.Contains(t, out, "dev(pid 4242), test")
	// Sorted by id
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("oss/cli")), bytes.Index(buf.Bytes(), []byte("work/api")))
}

func TestNewListCommand_GitColumn(t *testing.T) {
	// Setup: a project that is a git repository
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	api := testProject("work/api", dir, "dev")
	container, deps := newTestContainer(map[string]*domain.Project{api.ID: api})
	deps.Prober.Status = &domain.GitStatus{Branch: "main", Dirty: true, Ahead: 2}

	// Create command
	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "main* +2")
	assert.Equal(t, []string{dir}, deps.Prober.Probed)
}

func TestNewListCommand_Filter(t *testing.T) {
	// Setup
	api := testProject("work/api", t.TempDir(), "dev")
	cli := testProject("oss/cli", t.TempDir(), "build")
	container, _ := newTestContainer(map[string]*domain.Project{
		api.ID: api,
		cli.ID: cli,
	})

	// Create command
	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"api"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "work/api")
	assert.NotContains(t, buf.String(), "oss/cli")
}

func TestFormatGit(t *testing.T) {
	assert.Equal(t, "-", formatGit(nil))
	assert.Equal(t, "main", formatGit(&domain.GitStatus{Branch: "main"}))
	assert.Equal(t, "main*", formatGit(&domain.GitStatus{Branch: "main", Dirty: true}))
	assert.Equal(t, "main +1 -3", formatGit(&domain.GitStatus{Branch: "main", Ahead: 1, Behind: 3}))
}
