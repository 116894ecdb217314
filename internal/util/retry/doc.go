// Package retry provides bounded retry combinators for remote operations.
//
// The [WithExponentialBackoff] function retries an operation with
// configurable max attempts, initial delay, and maximum delay. The [Until]
// function polls a condition at a fixed interval under a wall-clock
// timeout; it backs asynchronous operation polling and the
// eventual-consistency reads performed after mutating API calls.
package retry
