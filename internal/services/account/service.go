// File: internal/services/account/service.go
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/huaxia-history/go-huaxia/internal/api"
)

// Platform is the slice of the REST client the account service needs.
type Platform interface {
	Register(ctx context.Context, req api.RegisterDTO) (*api.UserVO, error)
	Login(ctx context.Context, req api.LoginDTO) (*api.LoginVO, error)
}

// Service handles account registration, login and logout, persisting the
// issued bearer token through Credentials.
type Service struct {
	platform Platform
	creds    *Credentials
	logger   Logger
}

func NewService(platform Platform, creds *Credentials, logger Logger) *Service {
	return &Service{platform: platform, creds: creds, logger: logger}
}

// Register creates a platform account. It does not log the user in; the
// caller follows up with Login.
func (s *Service) Register(ctx context.Context, username, password, email string) (*api.UserVO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	user, err := s.platform.Register(ctx, api.RegisterDTO{
		Username: username,
		Password: password,
		Email:    strings.TrimSpace(email),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account registered", "username", user.Username)
	return user, nil
}

// Login exchanges credentials for a token and stores it for later requests.
func (s *Service) Login(ctx context.Context, username, password string) (*api.LoginVO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	res, err := s.platform.Login(ctx, api.LoginDTO{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	s.creds.SetToken(res.Token)
	s.logger.Info("logged in", "username", res.Username)
	return res, nil
}

// Logout drops the stored token. Purely client-side; the server keeps no
// session state.
func (s *Service) Logout() {
	s.creds.Clear()
	s.logger.Info("logged out")
}

// Token exposes the current bearer token for request signing.
func (s *Service) Token() string {
	return s.creds.Token()
}
