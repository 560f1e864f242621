// Package debugger detects whether a debugger is attached to the running process.
package debugger

import (
	"context"
	"time"
)

// DefaultPollInterval is how often WaitForAttach checks for a debugger.
const DefaultPollInterval = 250 * time.Millisecond

// attached is swapped out in tests.
var attached = tracerAttached

// Attached reports whether a debugger is tracing this process.
func Attached() bool {
	return attached()
}

// WaitForAttach blocks until a debugger attaches, the timeout expires or ctx is done.
// It reports whether a debugger is attached when it returns.
func WaitForAttach(ctx context.Context, timeout, poll time.Duration) bool {
	if attached() {
		return true
	}
	if timeout <= 0 {
		return false
	}
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return attached()
		case <-ticker.C:
			if attached() {
				return true
			}
		}
	}
}
