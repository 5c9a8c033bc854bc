package services

import (
	goerrors "errors"
	"fmt"

	"teamboard/errors"
)

// DefaultMaxRetries bounds how many times a conflicted save is re-attempted.
const DefaultMaxRetries = 3

// ExecuteWithRetry attempts save(entity) and, on a version conflict, retries
// the same in-memory entity up to maxRetries more times. Any other failure is
// propagated immediately. This is a blind retry: nothing is re-read between
// attempts, so the mutation must be idempotent to reapply cleanly.
func ExecuteWithRetry[T any](entity T, save func(T) (T, error), maxRetries int) (T, error) {
	saved, err := save(entity)
	for attempt := 0; attempt < maxRetries && goerrors.Is(err, errors.ErrVersionConflict); attempt++ {
		saved, err = save(entity)
	}
	if err != nil {
		var zero T
		if goerrors.Is(err, errors.ErrVersionConflict) {
			return zero, fmt.Errorf("retries exhausted after %d attempts: %w", maxRetries+1, err)
		}
		return zero, err
	}
	return saved, nil
}
