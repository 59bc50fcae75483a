package domain

// GitStatus is a point-in-time snapshot of a project's repository state.
// It is recomputed on every listing and never cached across invocations.
type GitStatus struct {
	Branch string
	Ahead  int // Commits ahead of upstream (0 when no upstream)
	Behind int // Commits behind upstream (0 when no upstream)
	Dirty  bool
}
