package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	// maxConcurrencyRetries bounds transparent retries of a command whose
	// optimistic write conflicted with a concurrent one.
	maxConcurrencyRetries = 3

	// retryBackoffBase is the first retry delay; subsequent delays double.
	retryBackoffBase = 25 * time.Millisecond
)

// withConcurrencyRetry runs attempt, retrying with exponential backoff while
// it fails with ConcurrentModification. Any other outcome is returned as is;
// after the retry bound the conflict itself is surfaced to the caller.
func withConcurrencyRetry(ctx context.Context, attempt func() error) error {
	var err error
	for try := 0; try <= maxConcurrencyRetries; try++ {
		if try > 0 {
			backoff := retryBackoffBase << (try - 1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err = attempt()
		if err == nil || !errors.Is(err, errs.ErrConcurrentModification) {
			return err
		}
	}
	return err
}
