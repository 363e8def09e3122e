// File: internal/services/account/credentials_test.go
package account

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huaxia-history/go-huaxia/internal/storage"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestCredentials_RoundTrip(t *testing.T) {
	creds := NewCredentials(storage.NewMemoryStore(), nopLogger{})

	assert.Empty(t, creds.Token())

	creds.SetToken("opaque-token")
	assert.Equal(t, "opaque-token", creds.Token())

	creds.Clear()
	assert.Empty(t, creds.Token())
}

func TestCredentials_ExpiredJWTIsDropped(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	creds := NewCredentials(storage.NewMemoryStore(), nopLogger{})
	creds.now = func() time.Time { return now }

	creds.SetToken(signedToken(t, now.Add(-time.Hour)))
	assert.Empty(t, creds.Token())

	creds.SetToken(signedToken(t, now.Add(time.Hour)))
	assert.NotEmpty(t, creds.Token())
}

func TestCredentials_NonJWTTokenPassesThrough(t *testing.T) {
	creds := NewCredentials(storage.NewMemoryStore(), nopLogger{})
	creds.SetToken("not.a.jwt-at-all")
	assert.Equal(t, "not.a.jwt-at-all", creds.Token())
}
