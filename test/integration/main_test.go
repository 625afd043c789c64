package integration_test

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"carelink_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
	seq              atomic.Int64
)

// GetTestServer returns the shared test server, created on first use.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

// nextSeq returns a process-unique sequence number for HKIDs and
// emails.
func nextSeq() int {
	return int(seq.Add(1))
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
