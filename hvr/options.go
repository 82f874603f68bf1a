package hvr

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	logger             zerolog.Logger
	httpClient         *http.Client
	timeout            time.Duration
	maxRetries         uint64
	retryInterval      time.Duration
	userAgent          string
	insecureSkipVerify bool
	registerer         prometheus.Registerer
}

func defaultOptions() clientOptions {
	return clientOptions{
		logger:        zerolog.Nop(),
		timeout:       30 * time.Second,
		retryInterval: 500 * time.Millisecond,
		userAgent:     "hvrctl",
	}
}

// WithLogger sets the logger used for request and login events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client. Timeout and TLS
// options are ignored when a client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetry retries requests that fail before a response is received, up
// to maxRetries times with exponential backoff starting at interval.
// HTTP error responses are never retried.
func WithRetry(maxRetries uint64, interval time.Duration) Option {
	return func(o *clientOptions) {
		o.maxRetries = maxRetries
		if interval > 0 {
			o.retryInterval = interval
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithInsecureSkipVerify disables certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.insecureSkipVerify = true
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}

func (o clientOptions) newHTTPClient() *http.Client {
	if o.httpClient != nil {
		return o.httpClient
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if o.insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{
		Timeout:   o.timeout,
		Transport: transport,
	}
}
