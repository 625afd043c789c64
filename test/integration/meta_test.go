package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDistricts(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/meta/districts", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var result struct {
		Districts []struct {
			Name   string `json:"name"`
			NameCn string `json:"nameCn"`
		} `json:"districts"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Len(t, result.Districts, 18)
	assert.Contains(t, body, "Yau Tsim Mong")
	assert.Contains(t, body, "油尖旺區")
}

func TestListBanks(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/meta/banks", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var result struct {
		Banks []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"banks"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.NotEmpty(t, result.Banks)
	assert.Contains(t, body, "HSBC")
}

func TestHealthz(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "ok")
}
