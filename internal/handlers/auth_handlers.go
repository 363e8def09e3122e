// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/huaxia-history/go-huaxia/internal/api"
	"github.com/huaxia-history/go-huaxia/internal/services/user_services"
)

var (
	usernameRegex     = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	passwordMinLength = 6
)

// AuthHandler holds the dependencies for authentication handlers.
type AuthHandler struct {
	AuthService *user_services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *user_services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: service}
}

// Register handles new user registrations.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "请求格式错误", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	switch {
	case !usernameRegex.MatchString(req.Username):
		writeError(w, "用户名需为3-20位字母、数字或下划线", http.StatusBadRequest)
		return
	case len(req.Password) < passwordMinLength:
		writeError(w, "密码长度不能少于6位", http.StatusBadRequest)
		return
	}

	u, err := h.AuthService.Register(r.Context(), req.Username, req.Password, strings.TrimSpace(req.Email))
	if err != nil {
		log.Printf("Registration error: %v", err)
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, api.UserVO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}

// Login validates user credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "请求格式错误", http.StatusBadRequest)
		return
	}

	u, token, err := h.AuthService.Login(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		log.Printf("Login error: %v", err)
		writeError(w, "用户名或密码错误", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, api.LoginVO{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
	})
}
