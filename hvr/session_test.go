package hvr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest(t *testing.T) {
	hub := newFakeHub(t, nil)
	client := newTestClient(t, hub)

	token, err := client.Token(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	path, body := hub.lastLogin()
	assert.Equal(t, "/auth/v1/password", path)
	assert.JSONEq(t, `{"username":"admin","password":"secret","refresh":"token"}`, string(body))
}

func TestSetupModeLogin(t *testing.T) {
	hub := newFakeHub(t, nil)
	client, err := NewSetupClient(hub.URL, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, client.Login(t.Context()))

	path, body := hub.lastLogin()
	assert.Equal(t, "/auth/v1/setup", path)
	assert.Empty(t, body)
}

func TestTokenRenewal(t *testing.T) {
	hub := newFakeHub(t, nil)
	client := newTestClient(t, hub)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := start
	client.session.now = func() time.Time { return now }

	ctx := t.Context()

	token, err := client.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// Reused while more than 60 seconds remain
	now = start.Add(3540 * time.Second)
	token, err = client.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, int32(1), hub.logins.Load())

	// Within 60 seconds of expiry a new login happens first
	now = start.Add(3541 * time.Second)
	token, err = client.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, int32(2), hub.logins.Load())
}

func TestShortLivedToken(t *testing.T) {
	hub := newFakeHub(t, nil)
	hub.expiresIn = 30
	client := newTestClient(t, hub)

	for i := 0; i < 3; i++ {
		_, err := client.Token(t.Context())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hub.logins.Load())
}

func TestConcurrentTokenLogsInOnce(t *testing.T) {
	hub := newFakeHub(t, nil)
	client := newTestClient(t, hub)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Token(t.Context())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hub.logins.Load())
}

func TestLoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("F_JX0A09: Invalid username or password"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "admin", "wrong")
	require.NoError(t, err)

	_, err = client.Token(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogin)
	assert.Equal(t, "401: F_JX0A09: Invalid username or password", err.Error())

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindLogin, e.Kind)
	assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
	assert.Equal(t, "F_JX0A09: Invalid username or password", e.Body)
	assert.Equal(t, "F_JX0A09", e.Code)
	assert.Equal(t, "Invalid username or password", e.Message)
	assert.True(t, e.IsUnauthorized())

	// A failed login is not cached
	_, err = client.GetHubs(t.Context())
	assert.ErrorIs(t, err, ErrLogin)
}

func TestLoginConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(url, "admin", "secret")
	require.NoError(t, err)

	_, err = client.Token(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConnection, e.Kind)
	assert.Contains(t, e.Error(), "Cannot login: ")
	assert.NotNil(t, e.Unwrap())
}

func TestMalformedLoginResponse(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "not json",
			body:   "<html>",
			errMsg: "malformed login response",
		},
		{
			name:   "missing token",
			body:   `{"token_type":"bearer","expires_in":3600}`,
			errMsg: "no access_token",
		},
		{
			name:   "no expiry",
			body:   `{"access_token":"opaque"}`,
			errMsg: "not a JWT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(server.URL, "admin", "secret")
			require.NoError(t, err)

			err = client.Login(t.Context())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLogin)

			e, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusOK, e.StatusCode)
			assert.Equal(t, tt.body, e.Body)
			assert.Contains(t, e.Message, tt.errMsg)
		})
	}
}

func TestTokenExpiryFromJWT(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("hub-secret"))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": signed,
			"token_type":   "bearer",
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "admin", "secret")
	require.NoError(t, err)

	tok, err := client.TokenSource(t.Context()).Token()
	require.NoError(t, err)
	assert.Equal(t, signed, tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.True(t, exp.Equal(tok.Expiry))
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	expiresIn := 1800.5
	got, err := tokenExpiry(loginResponse{AccessToken: "opaque", ExpiresIn: &expiresIn}, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(1800*time.Second+500*time.Millisecond), got)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = tokenExpiry(loginResponse{AccessToken: signed}, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no exp claim")
}

func TestTokenSourceReusesSession(t *testing.T) {
	hub := newFakeHub(t, nil)
	client := newTestClient(t, hub)

	ts := client.TokenSource(t.Context())
	first, err := ts.Token()
	require.NoError(t, err)
	second, err := client.Token(t.Context())
	require.NoError(t, err)

	assert.Equal(t, first.AccessToken, second)
	assert.True(t, first.Valid())
	assert.Equal(t, int32(1), hub.logins.Load())
}
