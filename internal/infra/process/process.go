// Package process spawns task processes and probes their liveness.
package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/runoshun/bonk/internal/domain"
	"golang.org/x/sys/unix"
)

// Client implements domain.ProcessManager.
type Client struct {
	clock domain.Clock
}

// NewClient creates a new process client.
func NewClient(clock domain.Clock) *Client {
	return &Client{clock: clock}
}

// Ensure Client implements domain.ProcessManager.
var _ domain.ProcessManager = (*Client)(nil)

// Alive reports whether the entry still refers to a live process reachable
// by the current user. The probe is signal 0: it queries existence without
// delivering anything. ESRCH and EPERM both count as dead; EPERM means the
// pid was recycled by another user's process, which for a single-user tool
// is the same outcome.
func (c *Client) Alive(e domain.Entry) bool {
	if e.PID <= 0 {
		return false
	}
	if err := unix.Kill(e.PID, 0); err != nil {
		return false
	}
	if e.ProcStart != 0 {
		if ticks, err := procStartTicks(e.PID); err == nil && ticks != e.ProcStart {
			// Same pid, different process: the id was recycled.
			return false
		}
	}
	return true
}

// StartBackground spawns argv in dir, detached from the calling terminal and
// session so the child outlives this invocation. All standard streams are
// redirected to the null device.
func (c *Client) StartBackground(_ context.Context, dir string, argv []string) (domain.Entry, error) {
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("open %s: %w", os.DevNull, err)
	}
	defer func() { _ = devnull.Close() }()

	// #nosec G204 - argv is assembled from the detected package manager and user-typed task args
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	// Setsid puts the child in a fresh session and process group, cutting
	// it loose from the controlling terminal.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return domain.Entry{}, fmt.Errorf("start %s: %w", argv[0], err)
	}
	if cmd.Process == nil || cmd.Process.Pid <= 0 {
		return domain.Entry{}, domain.ErrNoPID
	}

	entry := domain.Entry{
		PID:       cmd.Process.Pid,
		StartedAt: c.clock.Now(),
	}
	if ticks, err := procStartTicks(entry.PID); err == nil {
		entry.ProcStart = ticks
	}

	// Detach: the invocation exits without waiting for the child.
	if err := cmd.Process.Release(); err != nil {
		return domain.Entry{}, fmt.Errorf("release process: %w", err)
	}
	return entry, nil
}

// StartForeground runs argv in dir with the caller's standard streams and
// blocks until the child exits. The child shares the terminal, so interrupts
// from the terminal reach it directly.
func (c *Client) StartForeground(ctx context.Context, dir string, argv []string) error {
	// #nosec G204 - argv is assembled from the detected package manager and user-typed task args
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// TerminateGroup resolves the process group of pid and sends SIGTERM to the
// whole group. Package-manager wrappers fork the actual script; signalling
// only the wrapper would orphan the workload.
func (c *Client) TerminateGroup(pid int) error {
	pgid, err := unix.Getpgid(pid)
	if err != nil {
		return fmt.Errorf("resolve process group of %d: %w", pid, err)
	}
	if err := unix.Kill(-pgid, unix.SIGTERM); err != nil {
		return fmt.Errorf("terminate group %d: %w", pgid, err)
	}
	return nil
}
