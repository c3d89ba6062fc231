package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	Init("info")
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	Init("debug")
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())

	Init("not-a-level")
	assert.Equal(t, zerolog.Disabled, log.Logger.GetLevel())
}

func TestRoundTripper(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewRoundTripper(nil)}

	resp, err := client.Get(server.URL + "/test")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entry map[string]interface{}
	err = json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry)
	require.NoError(t, err)

	assert.Equal(t, "Request completed", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Contains(t, entry, "duration")
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestRoundTripperError(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)

	rt := NewRoundTripper(failingTransport{})

	req := httptest.NewRequest(http.MethodPost, "http://whyleloop.test/api", nil)

	_, err := rt.RoundTrip(req)
	require.Error(t, err)

	var entry map[string]interface{}
	err = json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry)
	require.NoError(t, err)

	assert.Equal(t, "Request failed", entry["message"])
	assert.Equal(t, "POST", entry["method"])
	assert.Contains(t, entry, "error")
}
