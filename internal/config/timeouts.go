package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable polling and retry values.
// These values can be customized via environment variables.
type Timeouts struct {
	PollInterval      time.Duration // Spacing between operation status checks
	PollTimeout       time.Duration // Maximum total wait for one operation
	RetryMaxAttempts  int           // Maximum number of retry attempts for API calls
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - GCE_OPERATION_POLL_INTERVAL (default: 500ms)
//   - GCE_OPERATION_POLL_TIMEOUT (default: 10m)
//   - GCE_RETRY_MAX_ATTEMPTS (default: 5)
//   - GCE_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PollInterval:      parseDuration("GCE_OPERATION_POLL_INTERVAL", 500*time.Millisecond),
		PollTimeout:       parseDuration("GCE_OPERATION_POLL_TIMEOUT", 10*time.Minute),
		RetryMaxAttempts:  parseInt("GCE_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("GCE_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// TestTimeouts returns short values suitable for unit tests: millisecond
// polling, a 100ms wall-clock bound, and a single retry. It exists only as
// a test seam and is never read on a production path; production callers
// go through LoadTimeouts.
func TestTimeouts() *Timeouts {
	return &Timeouts{
		PollInterval:      time.Millisecond,
		PollTimeout:       100 * time.Millisecond,
		RetryMaxAttempts:  1,
		RetryInitialDelay: time.Millisecond,
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
