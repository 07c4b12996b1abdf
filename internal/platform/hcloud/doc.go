// Package hcloud lists servers from Hetzner Cloud and presents them as
// instance records, so a cluster can be described directly from a Hetzner
// project instead of a gcloud export.
//
// Listing retries transient API failures with exponential backoff. Errors
// that retrying cannot fix, such as an invalid token or a malformed label
// selector, fail immediately.
//
// Timeouts and retry parameters are configurable via environment variables:
//
//   - MACHINEGEN_HCLOUD_TIMEOUT: Listing timeout (default: 2m)
//   - MACHINEGEN_RETRY_MAX_ATTEMPTS: Maximum retry attempts (default: 5)
//   - MACHINEGEN_RETRY_INITIAL_DELAY: Initial retry delay (default: 1s)
package hcloud
