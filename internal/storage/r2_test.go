package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestR2(t *testing.T, endpoint string) *R2Storage {
	s, err := NewR2Storage(Config{
		Bucket:    "test-bucket",
		AccessKey: "test-access",
		SecretKey: "test-secret",
		Endpoint:  endpoint,
	}, RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		sleep:        func(time.Duration) {},
	})
	require.NoError(t, err)
	return s
}

// headStub answers HEAD requests, failing the first failures calls.
func headStub(failures int32, size string) (*httptest.Server, *int32) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= failures {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Length", size)
		w.WriteHeader(http.StatusOK)
	}))
	return srv, &calls
}

func TestExistsRetriesTransientHeadFailure(t *testing.T) {
	srv, calls := headStub(1, "42")
	defer srv.Close()

	s := newTestR2(t, srv.URL)
	exists, err := s.Exists(context.Background(), "idCards/a.png")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestExistsReportsAbsenceAfterRetryBudget(t *testing.T) {
	srv, calls := headStub(100, "0")
	defer srv.Close()

	s := newTestR2(t, srv.URL)
	exists, err := s.Exists(context.Background(), "idCards/a.png")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls), "head must spend the full retry budget before reporting absence")
}

func TestGetSizeRetriesTransientHeadFailure(t *testing.T) {
	srv, calls := headStub(1, "1024")
	defer srv.Close()

	s := newTestR2(t, srv.URL)
	size, err := s.GetSize(context.Background(), "bankFiles/b.pdf")

	require.NoError(t, err)
	assert.Equal(t, int64(1024), size)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}
