package domain

import "errors"

// Domain errors.
var (
	ErrNoProjectDirs   = errors.New("no project directories configured (add projectDirs to config.json)")
	ErrProjectNotFound = errors.New("no matching project")
	ErrTaskNotFound    = errors.New("no matching task")
	ErrPromptAborted   = errors.New("selection aborted")
	ErrNotInteractive  = errors.New("ambiguous match and no interactive terminal to disambiguate")
	ErrNoPID           = errors.New("no process id obtained after spawn")
	ErrUsage           = errors.New("invalid arguments")
)
