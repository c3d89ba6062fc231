package logger

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the default zerolog logger for the SDK. Unknown level
// strings disable logging entirely; an embedded SDK stays silent unless the
// host opts in.
func Init(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.Disabled
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(parsed)
}

// RoundTripper wraps an http.RoundTripper and logs basic request/response
// metadata for each outgoing API call.
type RoundTripper struct {
	next http.RoundTripper
}

// NewRoundTripper creates a logging RoundTripper over next, defaulting to
// http.DefaultTransport when next is nil.
func NewRoundTripper(next http.RoundTripper) *RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RoundTripper{next: next}
}

func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Info().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", duration).
			Err(err).
			Msg("Request failed")
		return nil, err
	}

	log.Info().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("Request completed")

	return resp, nil
}
