// File: internal/services/account/credentials.go
package account

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/huaxia-history/go-huaxia/internal/storage"
)

// TokenKey is the storage key holding the bearer credential.
const TokenKey = "token"

// Credentials wraps bearer-token persistence. An absent or expired token
// means requests go out anonymous.
type Credentials struct {
	kv     storage.Store
	logger Logger
	now    func() time.Time
}

func NewCredentials(kv storage.Store, logger Logger) *Credentials {
	return &Credentials{kv: kv, logger: logger, now: time.Now}
}

// Token returns the stored bearer token, or "" when none is stored or the
// stored one has expired.
func (c *Credentials) Token() string {
	raw, err := c.kv.Get(TokenKey)
	if err != nil {
		return ""
	}
	if c.expired(raw) {
		c.logger.Warn("stored token is expired, sending anonymous requests")
		return ""
	}
	return raw
}

// SetToken persists a freshly issued token. Failures are logged; the
// session keeps working, just without surviving a restart.
func (c *Credentials) SetToken(token string) {
	if err := c.kv.Set(TokenKey, token); err != nil {
		c.logger.Error("saving token failed", "error", err)
	}
}

// Clear drops the stored credential.
func (c *Credentials) Clear() {
	if err := c.kv.Delete(TokenKey); err != nil {
		c.logger.Error("clearing token failed", "error", err)
	}
}

// expired peeks at the exp claim without verifying the signature. The
// client holds no signing secret and the server re-validates every request;
// this only avoids sending a token that is known dead. Tokens that do not
// parse as JWTs pass through untouched.
func (c *Credentials) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(c.now())
}
