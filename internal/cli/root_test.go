package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/domain"
	"github.com/runoshun/bonk/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// testDeps bundles the mocks behind a test container so individual tests can
// reach into them.
type testDeps struct {
	Loader        *testutil.MockConfigLoader
	Registry      *testutil.MockRegistry
	Scanner       *testutil.MockScanner
	Procs         *testutil.MockProcessManager
	Prober        *testutil.MockGitProber
	Disambiguator *testutil.MockDisambiguator
}

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(projects map[string]*domain.Project) (*app.Container, *testDeps) {
	deps := &testDeps{
		Loader: &testutil.MockConfigLoader{
			Cfg: &domain.Config{ProjectDirs: []string{"work"}, Editor: "vim"},
		},
		Registry:      testutil.NewMockRegistry(),
		Scanner:       &testutil.MockScanner{Projects: projects},
		Procs:         testutil.NewMockProcessManager(),
		Prober:        &testutil.MockGitProber{},
		Disambiguator: &testutil.MockDisambiguator{},
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	container := app.NewWithDeps(
		app.Config{},
		deps.Loader,
		deps.Registry,
		deps.Scanner,
		deps.Procs,
		deps.Prober,
		deps.Disambiguator,
		&testutil.MockClock{NowTime: time.Now()},
		logger,
	)
	return container, deps
}

// testProject builds a scan-result project with stopped tasks.
func testProject(id, path string, taskNames ...string) *domain.Project {
	tasks := make(map[string]*domain.Task, len(taskNames))
	for _, name := range taskNames {
		tasks[name] = &domain.Task{Name: name, Command: "x", Status: domain.StatusStopped}
	}
	return &domain.Project{
		ID:             id,
		Path:           path,
		Runtime:        domain.RuntimeNode,
		PackageManager: domain.PMNpm,
		Tasks:          tasks,
	}
}

func TestNewRootCommand_UnknownFlagIsUsageError(t *testing.T) {
	container, _ := newTestContainer(nil)

	root := NewRootCommand(container, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"list", "--bogus"})

	err := root.Execute()

	assert.True(t, errors.Is(err, domain.ErrUsage))
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestNewRootCommand_HasAllSubcommands(t *testing.T) {
	container, _ := newTestContainer(nil)
	root := NewRootCommand(container, "test")

	for _, name := range []string{"list", "run", "stop", "cd", "edit"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
