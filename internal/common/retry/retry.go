package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/config"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries transient failures with exponential backoff. onExhausted
// runs once the retry budget is spent; its error (or nil) becomes the result.
type Retryer interface {
	Retry(ctx context.Context, operation, onExhausted func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}
	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}
	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation, onExhausted func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		log.Debugf(ctx, "retry budget exhausted: %v", err)
		if onExhausted != nil {
			return onExhausted()
		}
		return err
	}

	return nil
}

// StopRetryWithErr marks an error as permanent so the operation is not
// retried. Call it inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
