// Package gce provides a node lifecycle adapter for Google Compute Engine
// with asynchronous operation polling, bounded timeouts, and
// eventual-consistency reconciliation.
//
// # Architecture
//
// The package is organized into domain-specific modules:
//
//   - client.go: Per-resource API interfaces forming the provider boundary
//   - real_client.go: Boundary implementation over google.golang.org/api
//   - operations.go: Polling of asynchronous provider operations
//   - provisioner.go: The multi-step node creation protocol
//   - lifecycle.go: Get, list, destroy, and reboot of existing nodes
//   - images.go: Image catalog resolution across projects
//   - credentials.go: Login credential merging
//   - zones.go: Cached zone and machine type listings
//   - errors.go: The error taxonomy for terminal failures
//
// # Operation polling
//
// Every mutating API call returns an Operation handle immediately. The
// Poller re-fetches the operation at a fixed interval until it reaches
// DONE or a wall-clock timeout elapses. A timeout and a DONE state with an
// attached provider error are both terminal: neither is retried further.
//
// # Ordering
//
// Within one node's creation, boot-disk creation precedes instance
// creation, instance creation precedes the first tag mutation, and every
// tag mutation carries the fingerprint read from the latest instance
// snapshot. On destroy the instance is deleted before its boot disk, since
// a disk cannot be deleted while attached.
//
// # Configuration
//
// Polling and retry behavior is configurable via environment variables:
//
//   - GCE_OPERATION_POLL_INTERVAL: spacing between status checks (default: 500ms)
//   - GCE_OPERATION_POLL_TIMEOUT: maximum total wait (default: 10m)
//   - GCE_RETRY_MAX_ATTEMPTS: retries of a transient API failure (default: 5)
//   - GCE_RETRY_INITIAL_DELAY: initial backoff delay (default: 1s)
//
// Retries apply only to transient provider failures (rate limiting and
// server errors) at the REST boundary; operation timeouts and provider
// error states are terminal and never retried.
package gce
