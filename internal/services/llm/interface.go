// File: internal/services/llm/interface.go

// Package llm produces assistant replies for the chat stream endpoint.
package llm

import (
	"context"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

// Responder streams an assistant reply for the given conversation,
// delivering text deltas as they are produced.
type Responder interface {
	StreamReply(ctx context.Context, history []domain.ChatMessage, onDelta func(string) error) error
}

// Logger defines the logging interface used by the llm services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
