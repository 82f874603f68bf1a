package hvr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

type response struct {
	statusCode int
	body       []byte
}

// roundTrip sends one request and reads the whole response. Failures to
// get a response are retried according to WithRetry; any response,
// whatever its status, ends the loop.
func (c *Client) roundTrip(ctx context.Context, method, rawURL string, header http.Header, body []byte) (*response, error) {
	logger := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("url", rawURL).
		Logger()

	var resp *response
	attempt := 0
	operation := func() error {
		attempt++

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header = header.Clone()
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		start := time.Now()
		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			c.metrics.observe(method, 0, time.Since(start))
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer httpResp.Body.Close()

		data, err := io.ReadAll(httpResp.Body)
		elapsed := time.Since(start)
		c.metrics.observe(method, httpResp.StatusCode, elapsed)
		if err != nil {
			// a response arrived, so this is not retried
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		logger.Debug().
			Int("status", httpResp.StatusCode).
			Int("attempt", attempt).
			Dur("elapsed", elapsed).
			Int("bytes", len(data)).
			Msg("HVR API request")

		resp = &response{statusCode: httpResp.StatusCode, body: data}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.MaxElapsedTime = 0
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx)

	err := backoff.RetryNotify(operation, retry, func(err error, wait time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("HVR API request failed, retrying")
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
