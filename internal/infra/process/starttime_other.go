//go:build !linux

package process

import "errors"

// procStartTicks is unavailable off Linux; the liveness check falls back to
// the plain signal probe, leaving the residual pid-reuse risk documented on
// domain.Entry.
func procStartTicks(int) (uint64, error) {
	return 0, errors.New("process start ticks not available on this platform")
}
