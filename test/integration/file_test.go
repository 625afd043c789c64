package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noRedirectGet issues a GET without following the redirect, so the
// Location header can be inspected.
func noRedirectGet(t *testing.T, url string) *http.Response {
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	res, err := client.Get(url)
	require.NoError(t, err)
	res.Body.Close()
	return res
}

func TestFileEndpointRedirectsToStorageURL(t *testing.T) {
	ts := GetTestServer(t)

	res := noRedirectGet(t, ts.Server.URL+"/api/v1/suppliers/files/idCards/sample.png")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "http://localhost:5003/uploads/idCards/sample.png", res.Header.Get("Location"))
}
