// Package whyleloop is the Go client SDK for the Whyleloop
// deferred-deep-linking service. It restores pre-install link clicks for
// the current install, creates links for the current screen, and resolves
// slugs to their configured destinations.
package whyleloop

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/whyleloop/whyleloop-go/config"
	"github.com/whyleloop/whyleloop-go/identity"
	"github.com/whyleloop/whyleloop-go/logger"
	"github.com/whyleloop/whyleloop-go/storage"
	"github.com/whyleloop/whyleloop-go/storage/file"
	"github.com/whyleloop/whyleloop-go/storage/memory"
)

// Client talks to the Whyleloop service on behalf of one app. All methods
// are safe for concurrent use; each call is a single request/response
// exchange with no background work.
type Client struct {
	appID      string
	baseURL    string
	httpClient *http.Client
	identity   *identity.Resolver

	store    storage.Store
	provider identity.AttributeProvider
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithStore substitutes the key-value store backing the fingerprint cache.
func WithStore(store storage.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithAttributeProvider substitutes the device attribute source used for
// fingerprint generation.
func WithAttributeProvider(provider identity.AttributeProvider) Option {
	return func(c *Client) {
		c.provider = provider
	}
}

// NewClient constructs a Client from cfg. By default the fingerprint cache
// lives in a file store at cfg.StoragePath, degrading to an in-memory store
// when the path is unusable, because identity resolution must never block a
// restore attempt.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger.Init(cfg.LogLevel)

	c := &Client{
		appID:    cfg.AppID,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		provider: identity.HostProvider{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: logger.NewRoundTripper(nil),
		}
	}

	if c.store == nil {
		fileStore, err := file.NewStore(cfg.StoragePath)
		if err != nil {
			log.Debug().Err(err).Str("path", cfg.StoragePath).
				Msg("file store unavailable, fingerprint cache is in-memory only")
			c.store = memory.NewStore()
		} else {
			c.store = fileStore
		}
	}

	c.identity = identity.NewResolver(c.store, c.provider)

	return c, nil
}

// AppID returns the tenant identifier this client was built with.
func (c *Client) AppID() string {
	return c.appID
}

// envelope is the top-level shape every API response shares.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Err: errors.Wrap(err, "encode request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return &TransportError{Err: errors.Wrap(err, "build request")}
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: errors.Wrap(err, "send request")}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: errors.Wrap(err, "read response")}
	}

	var env envelope
	envErr := json.Unmarshal(raw, &env)

	if resp.StatusCode != http.StatusOK {
		// Prefer the server-supplied message when the error body decoded.
		if envErr == nil && env.Error != "" {
			return &ServerError{StatusCode: resp.StatusCode, Message: env.Error}
		}
		return &ServerError{StatusCode: resp.StatusCode}
	}

	if envErr != nil {
		return &ParseError{Reason: "response is not valid JSON", Err: envErr}
	}

	if !env.Success {
		return &ServerError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{Reason: "unexpected response shape", Err: err}
	}

	return nil
}
