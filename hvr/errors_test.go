package hvr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDiagnostic(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCode    string
		wantMessage string
	}{
		{"diagnostic", "F_JX0A09: Invalid credentials", "F_JX0A09", "Invalid credentials"},
		{"plain", "Bad request", "", "Bad request"},
		{"empty", "", "", ""},
		{"code only", "F_JX0A09", "F_JX0A09", ""},
		{"short", "F_JX", "F_JX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := splitDiagnostic(tt.text)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindConnection, "connection"},
		{KindLogin, "login"},
		{KindREST, "rest"},
		{Kind(0), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := newResponseError(KindREST, 404, "F_JX0A01: Hub does not exist")
		assert.Equal(t, "404: F_JX0A01: Hub does not exist", err.Error())
	})

	t.Run("connection message", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := newConnectionError("Cannot login", cause)
		assert.Equal(t, "Cannot login: dial tcp: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrConnection)
		assert.NotErrorIs(t, err, ErrREST)
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("list hubs: %w", newResponseError(KindLogin, 401, "denied"))
		assert.ErrorIs(t, err, ErrLogin)

		e, ok := AsError(err)
		assert.True(t, ok)
		assert.Equal(t, 401, e.StatusCode)

		_, ok = AsError(errors.New("other"))
		assert.False(t, ok)
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		tests := []struct {
			code     int
			expected bool
		}{
			{401, true},
			{403, true},
			{404, false},
			{500, false},
		}

		for _, tt := range tests {
			err := &Error{Kind: KindREST, StatusCode: tt.code}
			assert.Equal(t, tt.expected, err.IsUnauthorized())
		}
	})
}
