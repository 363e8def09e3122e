// File: internal/handlers/chat_handler_test.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

type responderFunc func(ctx context.Context, history []domain.ChatMessage, onDelta func(string) error) error

func (f responderFunc) StreamReply(ctx context.Context, history []domain.ChatMessage, onDelta func(string) error) error {
	return f(ctx, history, onDelta)
}

func postStream(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai/chat/stream", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Stream(rec, req)
	return rec
}

func TestStream_WritesFramesAndDone(t *testing.T) {
	h := NewChatHandler(responderFunc(func(_ context.Context, history []domain.ChatMessage, onDelta func(string) error) error {
		require.NotEmpty(t, history)
		assert.Equal(t, "唐朝多少年？", history[len(history)-1].Content)
		require.NoError(t, onDelta("唐朝"))
		require.NoError(t, onDelta("共289年。"))
		return nil
	}))

	rec := postStream(t, h, `{"message":"唐朝多少年？"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"data: 唐朝\n\ndata: 共289年。\n\ndata: [DONE]\n\n",
		rec.Body.String())
}

func TestStream_SplitsDeltasOnNewlines(t *testing.T) {
	h := NewChatHandler(responderFunc(func(_ context.Context, _ []domain.ChatMessage, onDelta func(string) error) error {
		return onDelta("## 标题\n正文第一行\n正文第二行")
	}))

	rec := postStream(t, h, `{"message":"q"}`)

	assert.Equal(t,
		"data: ## 标题\n\ndata: 正文第一行\n\ndata: 正文第二行\n\ndata: [DONE]\n\n",
		rec.Body.String())
}

func TestStream_ErrorMidStreamEmitsErrorMarker(t *testing.T) {
	h := NewChatHandler(responderFunc(func(_ context.Context, _ []domain.ChatMessage, onDelta func(string) error) error {
		require.NoError(t, onDelta("部分回答"))
		return errors.New("upstream exploded")
	}))

	rec := postStream(t, h, `{"message":"q"}`)

	body := rec.Body.String()
	assert.Contains(t, body, "data: 部分回答\n\n")
	assert.True(t, strings.HasSuffix(body, "data: [ERROR]\n\n"))
	assert.NotContains(t, body, "[DONE]")
}

func TestStream_RejectsEmptyMessage(t *testing.T) {
	h := NewChatHandler(responderFunc(func(context.Context, []domain.ChatMessage, func(string) error) error {
		t.Fatal("responder should not be called")
		return nil
	}))

	rec := postStream(t, h, `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStream_ForwardsHistory(t *testing.T) {
	var got []domain.ChatMessage
	h := NewChatHandler(responderFunc(func(_ context.Context, history []domain.ChatMessage, onDelta func(string) error) error {
		got = history
		return nil
	}))

	postStream(t, h, `{"message":"然后呢？","history":[{"role":"user","content":"讲讲秦朝"},{"role":"assistant","content":"秦朝是..."}]}`)

	require.Len(t, got, 3)
	assert.Equal(t, "讲讲秦朝", got[0].Content)
	assert.Equal(t, domain.RoleAssistant, got[1].Role)
	assert.Equal(t, "然后呢？", got[2].Content)
}
