// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/bonk/internal/domain"
	"github.com/runoshun/bonk/internal/infra/config"
	"github.com/runoshun/bonk/internal/infra/gitprobe"
	"github.com/runoshun/bonk/internal/infra/process"
	"github.com/runoshun/bonk/internal/infra/prompt"
	"github.com/runoshun/bonk/internal/infra/registry"
	"github.com/runoshun/bonk/internal/infra/scanner"
	"github.com/runoshun/bonk/internal/usecase"
)

// stateDirEnv overrides the default state directory when set.
const stateDirEnv = "BONK_DIR"

// Config holds the application paths.
type Config struct {
	Home         string // User home directory, anchors relative project roots
	StateDir     string // $BONK_DIR or ~/.bonk
	ConfigPath   string // Path to config.json
	RegistryPath string // Path to registry.json
}

// newConfig resolves the state directory from the environment.
func newConfig(home string) Config {
	stateDir := os.Getenv(stateDirEnv)
	if stateDir == "" {
		stateDir = filepath.Join(home, ".bonk")
	}
	return Config{
		Home:         home,
		StateDir:     stateDir,
		ConfigPath:   filepath.Join(stateDir, "config.json"),
		RegistryPath: filepath.Join(stateDir, "registry.json"),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	Registry      domain.Registry
	Scanner       domain.ProjectScanner
	Procs         domain.ProcessManager
	Prober        domain.GitProber
	Disambiguator domain.Disambiguator
	Clock         domain.Clock

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New creates a new Container rooted at the user's state directory.
func New() (*Container, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cfg := newConfig(home)

	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	reg, err := registry.Open(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}

	clock := domain.RealClock{}
	procs := process.NewClient(clock)

	return &Container{
		ConfigLoader:  config.NewLoader(cfg.ConfigPath),
		Registry:      reg,
		Scanner:       scanner.New(home, reg, procs, logger),
		Procs:         procs,
		Prober:        gitprobe.NewProber(),
		Disambiguator: prompt.NewPicker(),
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	loader domain.ConfigLoader,
	reg domain.Registry,
	scan domain.ProjectScanner,
	procs domain.ProcessManager,
	prober domain.GitProber,
	disambiguator domain.Disambiguator,
	clock domain.Clock,
	logger *slog.Logger,
) *Container {
	return &Container{
		ConfigLoader:  loader,
		Registry:      reg,
		Scanner:       scan,
		Procs:         procs,
		Prober:        prober,
		Disambiguator: disambiguator,
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
	}
}

// UseCase factory methods

// ListProjectsUseCase returns a new ListProjects use case.
func (c *Container) ListProjectsUseCase() *usecase.ListProjects {
	return usecase.NewListProjects(c.ConfigLoader, c.Scanner, c.Prober)
}

// RunTaskUseCase returns a new RunTask use case.
func (c *Container) RunTaskUseCase() *usecase.RunTask {
	return usecase.NewRunTask(c.ConfigLoader, c.Scanner, c.Registry, c.Procs, c.resolver())
}

// StopTaskUseCase returns a new StopTask use case.
func (c *Container) StopTaskUseCase() *usecase.StopTask {
	return usecase.NewStopTask(c.ConfigLoader, c.Scanner, c.Registry, c.Procs, c.resolver())
}

// OpenProjectUseCase returns a new OpenProject use case.
func (c *Container) OpenProjectUseCase() *usecase.OpenProject {
	return usecase.NewOpenProject(c.ConfigLoader, c.Scanner, c.Procs, c.resolver())
}

func (c *Container) resolver() *usecase.Resolver {
	return usecase.NewResolver(c.Disambiguator)
}
