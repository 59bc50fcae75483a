// Package gitprobe queries git state for project listings.
package gitprobe

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/runoshun/bonk/internal/domain"
)

// Ensure Prober implements domain.GitProber.
var _ domain.GitProber = (*Prober)(nil)

// Prober reads repository status by shelling out to git.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe returns branch, dirty flag and ahead/behind counts for the
// repository at path. A missing upstream makes the ahead/behind query fail;
// that failure is swallowed and both counts stay zero.
func (p *Prober) Probe(path string) (*domain.GitStatus, error) {
	branch, err := p.branch(path)
	if err != nil {
		return nil, err
	}
	dirty, err := p.dirty(path)
	if err != nil {
		return nil, err
	}

	status := &domain.GitStatus{Branch: branch, Dirty: dirty}
	status.Ahead, status.Behind = p.aheadBehind(path)
	return status, nil
}

func (p *Prober) branch(path string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// dirty reports whether the working tree has any uncommitted changes, staged
// or unstaged. Non-empty porcelain output means dirty.
func (p *Prober) dirty(path string) (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("check working tree: %w", err)
	}
	return len(out) > 0, nil
}

// aheadBehind counts commits relative to the configured upstream. Output is
// "<behind>\t<ahead>"; any failure (typically no upstream) yields zeros.
func (p *Prober) aheadBehind(path string) (ahead, behind int) {
	cmd := exec.Command("git", "rev-list", "--left-right", "--count", "@{upstream}...HEAD")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return 0, 0
	}
	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return 0, 0
	}
	behind, _ = strconv.Atoi(fields[0])
	ahead, _ = strconv.Atoi(fields[1])
	return ahead, behind
}
