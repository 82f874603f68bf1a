package hvr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	passwordLoginPath = "/auth/v1/password"
	setupLoginPath    = "/auth/v1/setup"

	// tokenRenewMargin is how long before expiry a cached token is replaced.
	tokenRenewMargin = 60 * time.Second
)

// session holds credentials and the cached bearer token.
type session struct {
	mu        sync.Mutex
	username  string
	password  string
	setupMode bool
	token     *oauth2.Token
	now       func() time.Time
}

type passwordLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Refresh  string `json:"refresh"`
}

type loginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   *float64 `json:"expires_in"`
}

// valid reports whether the cached token can be used without a new login.
func (s *session) valid() bool {
	if s.token == nil || s.token.AccessToken == "" {
		return false
	}
	return !s.now().After(s.token.Expiry.Add(-tokenRenewMargin))
}

// Token returns a bearer token, logging in first when none is cached or
// the cached one expires within 60 seconds.
func (c *Client) Token(ctx context.Context) (string, error) {
	tok, err := c.ensureToken(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Login makes sure a valid token is cached without exposing it.
func (c *Client) Login(ctx context.Context) error {
	_, err := c.ensureToken(ctx)
	return err
}

// TokenSource exposes the session as an oauth2.TokenSource, for callers
// that drive their own HTTP clients against the hub server.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, client: c}
}

type tokenSource struct {
	ctx    context.Context
	client *Client
}

func (ts *tokenSource) Token() (*oauth2.Token, error) {
	return ts.client.ensureToken(ts.ctx)
}

func (c *Client) ensureToken(ctx context.Context) (*oauth2.Token, error) {
	s := c.session
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid() {
		return cloneToken(s.token), nil
	}

	tok, err := c.login(ctx)
	c.metrics.login(err)
	if err != nil {
		return nil, err
	}
	s.token = tok
	return cloneToken(tok), nil
}

// login performs the authentication call. The caller holds s.mu.
func (c *Client) login(ctx context.Context) (*oauth2.Token, error) {
	s := c.session
	path := passwordLoginPath
	var body []byte
	if s.setupMode {
		path = setupLoginPath
	} else {
		var err error
		body, err = json.Marshal(passwordLogin{
			Username: s.username,
			Password: s.password,
			Refresh:  "token",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode login request: %w", err)
		}
	}

	c.logger.Debug().Str("path", path).Bool("setup_mode", s.setupMode).Msg("Logging in to HVR hub server")

	resp, err := c.roundTrip(ctx, http.MethodPost, c.baseURL+path, jsonHeader(), body)
	if err != nil {
		return nil, newConnectionError("Cannot login", err)
	}
	if !isSuccess(resp.statusCode) {
		return nil, newResponseError(KindLogin, resp.statusCode, string(resp.body))
	}

	var lr loginResponse
	if err := json.Unmarshal(resp.body, &lr); err != nil {
		e := newResponseError(KindLogin, resp.statusCode, string(resp.body))
		e.Message = "malformed login response: " + err.Error()
		return nil, e
	}
	if lr.AccessToken == "" {
		e := newResponseError(KindLogin, resp.statusCode, string(resp.body))
		e.Message = "login response carries no access_token"
		return nil, e
	}

	expiry, err := tokenExpiry(lr, s.now())
	if err != nil {
		e := newResponseError(KindLogin, resp.statusCode, string(resp.body))
		e.Message = err.Error()
		return nil, e
	}

	c.logger.Debug().Time("expires", expiry).Msg("Obtained HVR bearer token")

	return &oauth2.Token{
		AccessToken: lr.AccessToken,
		TokenType:   "bearer",
		Expiry:      expiry,
	}, nil
}

// tokenExpiry prefers expires_in and falls back to the exp claim when the
// access token is a JWT.
func tokenExpiry(lr loginResponse, now time.Time) (time.Time, error) {
	if lr.ExpiresIn != nil {
		return now.Add(time.Duration(*lr.ExpiresIn * float64(time.Second))), nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(lr.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("login response carries no expires_in and the token is not a JWT: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("login response carries no expires_in and the token has no exp claim")
	}
	return exp.Time, nil
}

func cloneToken(t *oauth2.Token) *oauth2.Token {
	cp := *t
	return &cp
}
