package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func noSleepPolicy(maxAttempts int) RetryPolicy {
	p := DefaultRetryPolicy()
	p.MaxAttempts = maxAttempts
	p.sleep = func(time.Duration) {}
	return p
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := noSleepPolicy(3).Do(func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	calls := 0
	err := noSleepPolicy(3).Do(func() error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	permanent := errors.New("access denied")
	calls := 0
	err := noSleepPolicy(3).Do(func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 3, calls)
}

func TestRetryDelaysGrowAndStayCapped(t *testing.T) {
	var delays []time.Duration
	p := RetryPolicy{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
		sleep:        func(d time.Duration) { delays = append(delays, d) },
	}

	_ = p.Do(func() error { return errors.New("boom") })

	// One sleep between each pair of attempts.
	assert.Len(t, delays, 4)
	for i, d := range delays {
		// Jitter keeps each delay within [0.5, 1.5) of the nominal
		// backoff, and nothing exceeds the cap.
		assert.GreaterOrEqual(t, d, time.Duration(float64(time.Second)*0.5), "delay %d too short", i)
		assert.LessOrEqual(t, d, 5*time.Second, "delay %d exceeds cap", i)
	}
}
