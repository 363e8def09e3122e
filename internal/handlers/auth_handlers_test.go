// File: internal/handlers/auth_handlers_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/repository/user"
	"github.com/huaxia-history/go-huaxia/internal/services/user_services"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	svc := user_services.NewAuthService(user.NewGormUserRepository(db), "test-secret", nopLogger{})
	return NewAuthHandler(svc)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestRegisterThenLogin(t *testing.T) {
	h := newAuthHandler(t)

	status, env := postJSON(t, h.Register, "/auth/register",
		`{"username":"zhangsan","password":"secret123","email":"z@example.com"}`)
	require.Equal(t, http.StatusOK, status, env.Msg)

	var userVO struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &userVO))
	assert.Equal(t, "zhangsan", userVO.Username)
	assert.NotZero(t, userVO.ID)

	status, env = postJSON(t, h.Login, "/auth/login",
		`{"username":"zhangsan","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)

	var loginVO struct {
		Token    string `json:"token"`
		UserID   uint   `json:"userId"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginVO))
	assert.NotEmpty(t, loginVO.Token)
	assert.Equal(t, userVO.ID, loginVO.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newAuthHandler(t)

	status, _ := postJSON(t, h.Register, "/auth/register",
		`{"username":"zhangsan","password":"secret123","email":"z@example.com"}`)
	require.Equal(t, http.StatusOK, status)

	status, env := postJSON(t, h.Login, "/auth/login",
		`{"username":"zhangsan","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "用户名或密码错误", env.Msg)
}

func TestRegisterValidation(t *testing.T) {
	h := newAuthHandler(t)

	status, env := postJSON(t, h.Register, "/auth/register",
		`{"username":"ab","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Msg, "用户名")

	status, env = postJSON(t, h.Register, "/auth/register",
		`{"username":"zhangsan","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Msg, "密码")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := newAuthHandler(t)

	status, _ := postJSON(t, h.Register, "/auth/register",
		`{"username":"zhangsan","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)

	status, env := postJSON(t, h.Register, "/auth/register",
		`{"username":"zhangsan","password":"secret456"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "用户名已被占用", env.Msg)
}
