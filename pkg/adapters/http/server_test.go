package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/aretw0/automat/pkg/adapters/http"
	"github.com/aretw0/automat/pkg/adapters/memory"
	"github.com/aretw0/automat/pkg/observability"
)

const div3JSON = `{
	"alphabet": ["0", "1"],
	"states": [
		{"name": "S0", "accepting": true},
		{"name": "S1"},
		{"name": "S2"}
	],
	"initial": "S0",
	"transitions": [
		{"from": "S0", "on": "0", "to": "S0"},
		{"from": "S0", "on": "1", "to": "S1"},
		{"from": "S1", "on": "0", "to": "S2"},
		{"from": "S1", "on": "1", "to": "S0"},
		{"from": "S2", "on": "0", "to": "S1"},
		{"from": "S2", "on": "1", "to": "S2"}
	]
}`

func newServer(t *testing.T) (*httptest.Server, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics()
	handler := adapter.NewHandler(memory.NewStore(), adapter.WithMetrics(metrics))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, metrics
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestServer_MachineLifecycle(t *testing.T) {
	srv, _ := newServer(t)

	resp := do(t, http.MethodPut, srv.URL+"/machines/div3", div3JSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/machines", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Machines []string `json:"machines"`
	}
	decode(t, resp, &listed)
	assert.Equal(t, []string{"div3"}, listed.Machines)

	resp = do(t, http.MethodGet, srv.URL+"/machines/div3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched struct {
		Name    string `json:"name"`
		Initial string `json:"initial"`
	}
	decode(t, resp, &fetched)
	assert.Equal(t, "div3", fetched.Name)
	assert.Equal(t, "S0", fetched.Initial)

	resp = do(t, http.MethodDelete, srv.URL+"/machines/div3", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/machines/div3", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Process(t *testing.T) {
	srv, _ := newServer(t)
	resp := do(t, http.MethodPut, srv.URL+"/machines/div3", div3JSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("Accepted", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/machines/div3/process", `{"input": "1001"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Accepted   bool   `json:"accepted"`
			FinalState string `json:"final_state"`
			Symbols    int    `json:"symbols"`
		}
		decode(t, resp, &result)
		assert.True(t, result.Accepted)
		assert.Equal(t, "S0", result.FinalState)
		assert.Equal(t, 4, result.Symbols)
	})

	t.Run("Rejected", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/machines/div3/process", `{"input": "10"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Accepted   bool   `json:"accepted"`
			FinalState string `json:"final_state"`
		}
		decode(t, resp, &result)
		assert.False(t, result.Accepted)
		assert.Equal(t, "S2", result.FinalState)
	})

	t.Run("Explicit Symbols", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/machines/div3/process", `{"symbols": ["1", "1"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Accepted bool `json:"accepted"`
		}
		decode(t, resp, &result)
		assert.True(t, result.Accepted)
	})

	t.Run("Empty Input", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/machines/div3/process", `{}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Accepted   bool   `json:"accepted"`
			FinalState string `json:"final_state"`
		}
		decode(t, resp, &result)
		assert.True(t, result.Accepted)
		assert.Equal(t, "S0", result.FinalState)
	})

	t.Run("Invalid Symbol", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/machines/div3/process", `{"input": "1012"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var result struct {
			Error string `json:"error"`
		}
		decode(t, resp, &result)
		assert.Contains(t, result.Error, "invalid symbol")
	})

	t.Run("Unknown Machine", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/machines/ghost/process", `{"input": "1"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_UpsertValidation(t *testing.T) {
	srv, _ := newServer(t)

	t.Run("Invalid Body", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/machines/bad", `not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Incomplete Machine", func(t *testing.T) {
		body := `{
			"alphabet": ["0", "1"],
			"states": [{"name": "S0", "accepting": true}],
			"initial": "S0",
			"transitions": [{"from": "S0", "on": "0", "to": "S0"}]
		}`
		resp := do(t, http.MethodPut, srv.URL+"/machines/partial", body)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var result struct {
			Error string `json:"error"`
		}
		decode(t, resp, &result)
		assert.Contains(t, result.Error, "incomplete transitions")

		// Nothing was saved.
		resp = do(t, http.MethodGet, srv.URL+"/machines/partial", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newServer(t)
	resp := do(t, http.MethodPut, srv.URL+"/machines/div3", div3JSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, http.MethodPost, srv.URL+"/machines/div3/process", `{"input": "11"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(strings.Builder)
	_, err := io.Copy(buf, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `automat_sequences_processed_total{machine="div3",result="accepted"} 1`)
}

func TestServer_Health(t *testing.T) {
	srv, _ := newServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
