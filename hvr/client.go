package hvr

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// APIVersion is the versioned path prefix of the generated endpoint methods.
const APIVersion = "v6.1.0.3"

// Client represents an HVR hub server API client
type Client struct {
	baseURL       string
	httpClient    *http.Client
	logger        zerolog.Logger
	session       *session
	maxRetries    uint64
	retryInterval time.Duration
	userAgent     string
	metrics       *metrics
}

// NewClient creates a client that logs in with username and password.
// No request is made until the first call.
func NewClient(baseURL, username, password string, opts ...Option) (*Client, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidConfig)
	}
	return newClient(baseURL, &session{username: username, password: password}, opts)
}

// NewSetupClient creates a client for a hub server in setup mode, which
// issues tokens without credentials.
func NewSetupClient(baseURL string, opts ...Option) (*Client, error) {
	return newClient(baseURL, &session{setupMode: true}, opts)
}

func newClient(baseURL string, s *session, opts []Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: hub URL is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s.now = time.Now

	client := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    o.newHTTPClient(),
		logger:        o.logger,
		session:       s,
		maxRetries:    o.maxRetries,
		retryInterval: o.retryInterval,
		userAgent:     o.userAgent,
	}
	if o.registerer != nil {
		client.metrics = newMetrics(o.registerer)
	}

	return client, nil
}

// BaseURL returns the hub server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetupMode reports whether the client logs in through the setup endpoint.
func (c *Client) SetupMode() bool {
	return c.session.setupMode
}
