package hvr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one call against the hub server.
type Request struct {
	Method string
	// Path is appended to the client's base URL, identifiers already
	// substituted and escaped.
	Path   string
	Query  url.Values
	Header http.Header
	// Body is encoded as JSON; nil sends no body.
	Body any
	// ExpectJSON selects decoding the response as JSON instead of
	// returning it as text.
	ExpectJSON bool
}

// Do performs r with a bearer token attached. On success it returns the
// decoded JSON value (ExpectJSON), the response text, or nil when the
// response body is empty. A non-2xx status yields an *Error of KindREST.
func (c *Client) Do(ctx context.Context, r *Request) (any, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	var body []byte
	if r.Body != nil {
		body, err = json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	header := http.Header{}
	for key, values := range r.Header {
		for _, v := range values {
			header.Add(key, v)
		}
	}
	for key, values := range jsonHeader() {
		header[key] = values
	}
	header.Set("Authorization", "bearer "+token)

	resp, err := c.roundTrip(ctx, r.Method, c.requestURL(r), header, body)
	if err != nil {
		return nil, newConnectionError("Request failed", err)
	}
	if !isSuccess(resp.statusCode) {
		return nil, newResponseError(KindREST, resp.statusCode, string(resp.body))
	}

	return decodeResult(resp.body, r.ExpectJSON)
}

func (c *Client) requestURL(r *Request) string {
	u := c.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

func decodeResult(body []byte, expectJSON bool) (any, error) {
	if len(body) == 0 {
		return nil, nil
	}
	if !expectJSON {
		return string(body), nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return v, nil
}
