// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with a configurable attempt
// budget and delay curve. It is used around Hetzner Cloud list calls, where
// rate limiting and locked resources are expected to clear on their own.
package retry
