// File: internal/api/auth.go
package api

import "context"

// RegisterDTO is the registration request body.
type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginDTO is the login request body.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserVO is a registered account as the platform returns it.
type UserVO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// LoginVO is the payload of a successful login.
type LoginVO struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterDTO) (*UserVO, error) {
	var out UserVO
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginDTO) (*LoginVO, error) {
	var out LoginVO
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
