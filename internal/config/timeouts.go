package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the configurable timeouts of a run.
// These values can be customized via environment variables.
type Timeouts struct {
	HCloudList        time.Duration // Timeout for listing servers from Hetzner Cloud
	RetryMaxAttempts  int           // Maximum number of retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - MACHINEGEN_HCLOUD_TIMEOUT (default: 2m)
//   - MACHINEGEN_RETRY_MAX_ATTEMPTS (default: 5)
//   - MACHINEGEN_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		HCloudList:        parseDuration("MACHINEGEN_HCLOUD_TIMEOUT", 2*time.Minute),
		RetryMaxAttempts:  parseInt("MACHINEGEN_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("MACHINEGEN_RETRY_INITIAL_DELAY", 1*time.Second),
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
	if err != nil || d <= 0 {
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
	if err != nil || i < 1 {
		return defaultVal
	}

	return i
}
