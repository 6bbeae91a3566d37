// Package retry holds the bounded retry policy injected into remote adapters.
package retry

import (
	"context"
	"time"

	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds retries both by attempt count and by total elapsed time.
// A context deadline on the call bounds it further.
type Policy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxElapsed      time.Duration
	// nil means every error is retried
	Retryable func(error) bool
}

func NewPolicy(cfg config.RetryConfig) Policy {
	return Policy{
		MaxAttempts:     cfg.MaxAttempts,
		InitialInterval: cfg.InitialInterval,
		MaxInterval:     cfg.MaxInterval,
		Multiplier:      cfg.Multiplier,
		MaxElapsed:      cfg.MaxElapsed,
	}
}

// WithRetryable returns a copy of p that only retries errors accepted by fn.
func (p Policy) WithRetryable(fn func(error) bool) Policy {
	p.Retryable = fn
	return p
}

// Do runs op until it succeeds, returns a non-retryable error, or the policy gives up.
// notify is called before each wait and may be nil.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error, notify func(err error, wait time.Duration)) error {
	var lastErr error
	attempt := func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.RetryNotify(attempt, p.backOff(ctx), notify)
	if err != nil && ctx.Err() != nil && lastErr != nil && err == ctx.Err() {
		// keep the remote classification visible to callers
		return errs.Wrapf(lastErr, "retry aborted: %v", ctx.Err())
	}
	return err
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		exp.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		exp.MaxInterval = p.MaxInterval
	}
	if p.Multiplier >= 1 {
		exp.Multiplier = p.Multiplier
	}
	exp.RandomizationFactor = 0.2
	exp.MaxElapsedTime = p.MaxElapsed
	exp.Reset()

	var b backoff.BackOff = exp
	if p.MaxAttempts > 0 {
		// the first call is not a retry
		b = backoff.WithMaxRetries(b, p.MaxAttempts-1)
	}
	return backoff.WithContext(b, ctx)
}
