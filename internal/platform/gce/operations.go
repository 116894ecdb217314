package gce

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/util/retry"
)

// Poller awaits asynchronous provider operations. It re-fetches an
// operation at a fixed interval until the provider reports DONE or the
// wall-clock timeout elapses. The calling goroutine blocks for the whole
// wait; there is no background scheduler.
type Poller struct {
	api      OperationAPI
	interval time.Duration
	timeout  time.Duration
	log      logr.Logger
}

// NewPoller creates a Poller using the interval and timeout from timeouts.
func NewPoller(api OperationAPI, timeouts *config.Timeouts, log logr.Logger) *Poller {
	return &Poller{
		api:      api,
		interval: timeouts.PollInterval,
		timeout:  timeouts.PollTimeout,
		log:      log,
	}
}

// Await blocks until op reaches DONE or the timeout elapses and returns
// the final operation snapshot.
//
// Three outcomes exist: success (DONE with no provider error), an
// *OperationFailedError (DONE with an attached error code and message),
// or an *OperationTimeoutError. Both failures are terminal; the caller
// must not retry the wait.
func (p *Poller) Await(ctx context.Context, op *Operation) (*Operation, error) {
	start := time.Now()
	last := op

	err := retry.Until(ctx, p.interval, p.timeout, func(ctx context.Context) (bool, error) {
		current, err := p.api.GetOperation(ctx, last)
		if err != nil {
			return false, fmt.Errorf("failed to get operation %s: %w", last.Name, err)
		}
		last = current
		return current.Status == OperationDone, nil
	})

	operationWaitDuration.Observe(time.Since(start).Seconds())

	if errors.Is(err, retry.ErrTimeout) {
		operationWaitTotal.WithLabelValues("timeout").Inc()
		p.log.Info("operation timed out", "operation", last.Name, "target", last.TargetLink, "status", last.Status)
		return last, &OperationTimeoutError{Target: operationTarget(last), Timeout: p.timeout}
	}
	if err != nil {
		operationWaitTotal.WithLabelValues("error").Inc()
		return last, err
	}

	if last.Failed() {
		operationWaitTotal.WithLabelValues("failed").Inc()
		p.log.Info("operation failed", "operation", last.Name, "code", last.ErrorCode, "message", last.ErrorMessage)
		return last, &OperationFailedError{Target: operationTarget(last), Code: last.ErrorCode, Message: last.ErrorMessage}
	}

	operationWaitTotal.WithLabelValues("done").Inc()
	return last, nil
}

func operationTarget(op *Operation) string {
	if op.TargetLink != "" {
		return op.TargetLink
	}
	return op.Name
}
