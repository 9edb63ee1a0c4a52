package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// maxBatchParams limits the number of bound parameters in a single IN (...) query
const maxBatchParams = 500

// errStopRetry is matched by criticalError to make the repeater give up immediately
var errStopRetry = errors.New("stop retry")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

// Is lets the repeater recognize the error as terminal
func (e *criticalError) Is(target error) bool { return target == errStopRetry }

// withLockRetry runs fn, retrying sqlite lock/busy errors with backoff.
// Any other error is returned as is without further attempts.
func withLockRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil || isLockError(err) {
			return err // nil or retry
		}
		return &criticalError{err: err}
	}, errStopRetry)

	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a unique constraint violation
func isUniqueError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// chunkStrings splits values into slices of at most size elements
func chunkStrings(values []string, size int) [][]string {
	var res [][]string
	for len(values) > size {
		res = append(res, values[:size])
		values = values[size:]
	}
	if len(values) > 0 {
		res = append(res, values)
	}
	return res
}
