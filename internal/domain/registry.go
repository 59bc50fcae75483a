package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is the durable record of a background task process.
//
// ProcStart holds the kernel start ticks of the pid as read from
// /proc/<pid>/stat at record time. It lets the liveness check distinguish a
// live process from an unrelated one that reused the pid. Zero means the
// value was unavailable (non-Linux, or a hand-edited entry), in which case
// the plain signal probe is trusted.
type Entry struct {
	StartedAt time.Time `json:"startedAt,omitempty"`
	PID       int       `json:"pid"`
	ProcStart uint64    `json:"procStart,omitempty"`
}

// entryAlias avoids recursing into UnmarshalJSON.
type entryAlias Entry

// UnmarshalJSON accepts either the full entry object or a bare numeric pid.
// The registry file is documented as hand-editable; a user pasting a plain
// pid must not break loading.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pid int
	if err := json.Unmarshal(data, &pid); err == nil {
		*e = Entry{PID: pid}
		return nil
	}
	var a entryAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("parse registry entry: %w", err)
	}
	*e = Entry(a)
	return nil
}

// Registry is the durable mapping of (project id, task name) to the process
// believed to be running that task in the background. An entry exists only
// while the task is considered running; clearing it is the only way to mark
// the task stopped. Entries may be stale: the referenced process can have
// died externally, or its pid can have been recycled by the OS.
type Registry interface {
	// Get returns the entry for a task, if present.
	Get(projectID, task string) (Entry, bool)

	// Tasks returns all entries recorded for a project.
	Tasks(projectID string) map[string]Entry

	// Record inserts or overwrites an entry and flushes it to storage
	// before returning.
	Record(projectID, task string, e Entry) error

	// Clear removes an entry if present and flushes. Absence is not an
	// error.
	Clear(projectID, task string) error
}
