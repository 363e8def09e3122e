// File: internal/api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestClient(url string, token TokenSource) *Client {
	return NewClient(url+"/", token, nopLogger{})
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dynasty/list", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"msg":  "success",
			"data": []map[string]interface{}{
				{"id": 1, "name": "唐朝", "startYear": 618, "endYear": 907},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	dynasties, err := c.ListDynasties(context.Background())
	require.NoError(t, err)
	require.Len(t, dynasties, 1)
	assert.Equal(t, "唐朝", dynasties[0].Name)
	assert.Equal(t, 618, dynasties[0].StartYear)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 200, "data": []interface{}{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, func() string { return "tok-123" })
	_, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_AnonymousWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 200, "data": []interface{}{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, func() string { return "" })
	_, err := c.ListRelics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("uses server message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 401, "msg": "用户名或密码错误"})
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, nil)
		_, err := c.Login(context.Background(), LoginDTO{Username: "u", Password: "p"})
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "用户名或密码错误", apiErr.Msg)
	})

	t.Run("falls back when body is not an envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, nil)
		_, err := c.GetDynasty(context.Background(), 1)
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
		assert.Equal(t, "请求失败", apiErr.Msg)
	})
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	var got RegisterDTO
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]interface{}{"id": 7, "username": got.Username},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	user, err := c.Register(context.Background(), RegisterDTO{
		Username: "zhangsan", Password: "secret", Email: "z@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, RegisterDTO{Username: "zhangsan", Password: "secret", Email: "z@example.com"}, got)
	assert.Equal(t, uint(7), user.ID)
}

func TestClient_NullDataLeavesOutputZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 200, "msg": "success", "data": nil})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	persons, err := c.GetRandomPersons(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestClient_PaginatedPlaceNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place-name/page", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]interface{}{
				"list": []map[string]interface{}{
					{"id": 11, "ancientName": "长安", "modernName": "西安", "modernLocation": "陕西省西安市"},
				},
				"total": 21, "pageNum": 2, "pageSize": 10, "totalPages": 3,
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	page, err := c.GetPlaceNamePage(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.List, 1)
	assert.Equal(t, "长安", page.List[0].AncientName)
	assert.Equal(t, "西安", page.List[0].ModernName)
}
