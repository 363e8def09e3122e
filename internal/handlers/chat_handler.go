// File: internal/handlers/chat_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/services/llm"
)

// ChatHandler streams AI replies over the event-stream wire format the
// web and terminal clients consume.
type ChatHandler struct {
	Responder llm.Responder
}

func NewChatHandler(responder llm.Responder) *ChatHandler {
	return &ChatHandler{Responder: responder}
}

type streamRequest struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history"`
}

// Stream handles POST /ai/chat/stream. Each reply fragment goes out as a
// "data:" line; the stream ends with [DONE], or [ERROR] when the upstream
// fails mid-reply. Frames are line-based, so deltas are split on newlines
// before writing.
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req streamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeError(w, "请求格式错误", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	history := append(req.History, domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: req.Message,
	})

	writeFrame := func(payload string) {
		_, _ = fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	err := h.Responder.StreamReply(r.Context(), history, func(delta string) error {
		for _, line := range strings.Split(delta, "\n") {
			if line == "" {
				continue
			}
			writeFrame(line)
		}
		return nil
	})
	if err != nil {
		if r.Context().Err() == context.Canceled {
			// client went away, nothing left to write
			return
		}
		log.Printf("[ChatHandler] stream failed: %v", err)
		writeFrame("[ERROR]")
		return
	}

	writeFrame("[DONE]")
}
