package database

import (
	"fmt"
	"time"
)

const maxRetries = 3

var retryBaseDelay = time.Second

// withRetry runs op up to maxRetries times with exponential backoff
// (1s, 2s, 4s). Transient database hiccups shouldn't lose a session's
// progress, so every repository call goes through here.
func withRetry(name string, op func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt < maxRetries-1 {
			time.Sleep(retryBaseDelay * (1 << attempt))
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, maxRetries, err)
}
