package tester

import (
	"errors"
	"strings"
	"syscall"
	"time"
)

const (
	// maxRetries bounds how often a rate-limited or reset request is
	// reissued before the last observed status is reported.
	maxRetries = 3
	// backoffBase is the delay before the first retry; it doubles on
	// every subsequent attempt.
	backoffBase = 500 * time.Millisecond
)

// backoffDelay returns the pause before retry number attempt (0-based):
// base, 2*base, 4*base, ...
func backoffDelay(attempt int, base time.Duration) time.Duration {
	return base << attempt
}

// retryable reports whether a transport error warrants a retry. HTTP 429
// is handled separately from the status code.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	return strings.Contains(err.Error(), "connection reset")
}
