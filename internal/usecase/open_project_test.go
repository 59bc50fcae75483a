package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/bonk/internal/domain"
	"github.com/runoshun/bonk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenProject(projects map[string]*domain.Project, procs *testutil.MockProcessManager) *OpenProject {
	return NewOpenProject(
		&testutil.MockConfigLoader{Cfg: &domain.Config{ProjectDirs: []string{"work", "oss"}, Editor: "hx"}},
		&testutil.MockScanner{Projects: projects},
		procs,
		NewResolver(&testutil.MockDisambiguator{}),
	)
}

func TestOpenProject_Shell(t *testing.T) {
	base := t.TempDir()
	projects := testProjects(base)
	procs := testutil.NewMockProcessManager()
	uc := newOpenProject(projects, procs)

	t.Setenv("SHELL", "/bin/zsh")
	out, err := uc.Execute(context.Background(), OpenProjectInput{
		WorkDir: base,
		Mode:    OpenShell,
		Args:    []string{"oss/cli"},
	})
	require.NoError(t, err)
	assert.Equal(t, "oss/cli", out.Project.ID)
	assert.Equal(t, []string{"/bin/zsh"}, procs.ForegroundArgv)
	assert.Equal(t, projects["oss/cli"].Path, procs.ForegroundDir)
}

func TestOpenProject_ShellFallback(t *testing.T) {
	base := t.TempDir()
	procs := testutil.NewMockProcessManager()
	uc := newOpenProject(testProjects(base), procs)

	t.Setenv("SHELL", "")
	_, err := uc.Execute(context.Background(), OpenProjectInput{WorkDir: base, Mode: OpenShell, Args: []string{"oss/cli"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"sh"}, procs.ForegroundArgv)
}

func TestOpenProject_Editor(t *testing.T) {
	base := t.TempDir()
	projects := testProjects(base)
	procs := testutil.NewMockProcessManager()
	uc := newOpenProject(projects, procs)

	// Inside the project directory no argument is needed.
	out, err := uc.Execute(context.Background(), OpenProjectInput{
		WorkDir: projects["work/api"].Path,
		Mode:    OpenEditor,
	})
	require.NoError(t, err)
	assert.Equal(t, "work/api", out.Project.ID)
	assert.Equal(t, []string{"hx"}, procs.ForegroundArgv, "editor comes from config")
}
