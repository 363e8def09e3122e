// File: internal/services/ai/interface.go
package ai

import (
	"context"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

// Request is the chat-stream request payload.
type Request struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history,omitempty"`
}

// Callbacks receive stream lifecycle events. OnChunk fires once per content
// chunk in receive order. OnError and OnDone are terminal and mutually
// exclusive: at most one fires, and nothing fires after it.
type Callbacks struct {
	OnChunk func(content string)
	OnError func(message string)
	OnDone  func()
}

// StreamProvider is implemented by the streaming chat transport.
type StreamProvider interface {
	ChatStream(ctx context.Context, req Request, cb Callbacks)
}

// TokenSource supplies the bearer credential for outgoing requests. An empty
// string means the request goes out anonymous.
type TokenSource func() string

// Logger defines the logging interface used by the transport.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
