// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/runoshun/bonk/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockRegistry is an in-memory test double for domain.Registry.
type MockRegistry struct {
	Data      map[string]map[string]domain.Entry
	RecordErr error
	ClearErr  error
}

// NewMockRegistry creates a MockRegistry with an initialized map.
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{Data: make(map[string]map[string]domain.Entry)}
}

// Get returns the entry for a task, if present.
func (m *MockRegistry) Get(projectID, task string) (domain.Entry, bool) {
	e, ok := m.Data[projectID][task]
	return e, ok
}

// Tasks returns all entries recorded for a project.
func (m *MockRegistry) Tasks(projectID string) map[string]domain.Entry {
	return m.Data[projectID]
}

// Record inserts or overwrites an entry.
func (m *MockRegistry) Record(projectID, task string, e domain.Entry) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	if m.Data[projectID] == nil {
		m.Data[projectID] = make(map[string]domain.Entry)
	}
	m.Data[projectID][task] = e
	return nil
}

// Clear removes an entry if present.
func (m *MockRegistry) Clear(projectID, task string) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	delete(m.Data[projectID], task)
	return nil
}

// MockProcessManager is a test double for domain.ProcessManager.
// Fields are ordered to minimize memory padding.
type MockProcessManager struct {
	AlivePids       map[int]bool // Pids reported alive
	BackgroundErr   error
	ForegroundErr   error
	TerminateErr    error
	BackgroundEntry domain.Entry // Entry returned by StartBackground
	BackgroundArgv  []string     // Last argv passed to StartBackground
	ForegroundArgv  []string     // Last argv passed to StartForeground
	TerminatedPids  []int        // Pids passed to TerminateGroup
	BackgroundDir   string
	ForegroundDir   string
	BackgroundCalls int
	ForegroundCalls int
}

// NewMockProcessManager creates a MockProcessManager with initialized maps.
func NewMockProcessManager() *MockProcessManager {
	return &MockProcessManager{AlivePids: make(map[int]bool)}
}

// Alive reports liveness from the AlivePids map.
func (m *MockProcessManager) Alive(e domain.Entry) bool {
	return m.AlivePids[e.PID]
}

// StartBackground records the call and returns the configured entry.
func (m *MockProcessManager) StartBackground(_ context.Context, dir string, argv []string) (domain.Entry, error) {
	m.BackgroundCalls++
	m.BackgroundDir = dir
	m.BackgroundArgv = argv
	if m.BackgroundErr != nil {
		return domain.Entry{}, m.BackgroundErr
	}
	return m.BackgroundEntry, nil
}

// StartForeground records the call.
func (m *MockProcessManager) StartForeground(_ context.Context, dir string, argv []string) error {
	m.ForegroundCalls++
	m.ForegroundDir = dir
	m.ForegroundArgv = argv
	return m.ForegroundErr
}

// TerminateGroup records the pid.
func (m *MockProcessManager) TerminateGroup(pid int) error {
	m.TerminatedPids = append(m.TerminatedPids, pid)
	return m.TerminateErr
}

// MockScanner is a test double for domain.ProjectScanner.
type MockScanner struct {
	Projects map[string]*domain.Project
	ScanErr  error
	Roots    []string // Last roots passed to Scan
}

// Scan returns the configured projects.
func (m *MockScanner) Scan(roots []string) (map[string]*domain.Project, error) {
	m.Roots = roots
	if m.ScanErr != nil {
		return nil, m.ScanErr
	}
	return m.Projects, nil
}

// MockGitProber is a test double for domain.GitProber.
type MockGitProber struct {
	Status *domain.GitStatus
	Err    error
	Probed []string // Paths probed
}

// Probe records the path and returns the configured status.
func (m *MockGitProber) Probe(path string) (*domain.GitStatus, error) {
	m.Probed = append(m.Probed, path)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Status, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg *domain.Config
	Err error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cfg, nil
}

// MockDisambiguator is a test double for domain.Disambiguator.
// Fields are ordered to minimize memory padding.
type MockDisambiguator struct {
	ChooseErr  error
	Label      string   // Last prompt label
	Candidates []string // Last candidate list
	Index      int      // Index to return
	Called     bool
}

// Choose records the call and returns the configured index.
func (m *MockDisambiguator) Choose(label string, candidates []string) (int, error) {
	m.Called = true
	m.Label = label
	m.Candidates = candidates
	if m.ChooseErr != nil {
		return 0, m.ChooseErr
	}
	return m.Index, nil
}
