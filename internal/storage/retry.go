package storage

import (
	"math/rand"
	"time"
)

// RetryPolicy retries transient object-store failures with exponential
// backoff. The delay before attempt n is
// InitialDelay * 2^(n-1) * jitter, jitter uniform in [0.5, 1.5), capped
// at MaxDelay. The last error is returned once the budget is spent.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration

	// sleep is replaceable in tests
	sleep func(time.Duration)
}

// DefaultRetryPolicy matches the service's production settings: three
// attempts, 1s base, 5s cap.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
	}
}

// Do runs op until it succeeds or MaxAttempts is reached.
func (p RetryPolicy) Do(op func() error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	delay := p.InitialDelay

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := op(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == p.MaxAttempts {
			break
		}

		jittered := time.Duration(float64(delay) * (0.5 + rand.Float64()))
		if jittered > p.MaxDelay {
			jittered = p.MaxDelay
		}
		sleep(jittered)

		delay *= 2
	}

	return lastErr
}
