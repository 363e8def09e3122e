// File: internal/services/chat/types.go
package chat

import "github.com/huaxia-history/go-huaxia/internal/domain"

// Logger defines the logging interface used across chat services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SessionStore is the slice of the session store the orchestrator needs.
type SessionStore interface {
	CreateSession() domain.ChatSession
	UpdateMessages(sessionID string, messages []domain.ChatMessage)
	CurrentSession() *domain.ChatSession
}

// State of the conversation the orchestrator drives.
type State int

const (
	// StateIdle waits for input; entered at start and after any terminal
	// transition.
	StateIdle State = iota
	// StateSending is the transient window between accepting input and
	// opening the stream.
	StateSending
	// StateStreaming accumulates the assistant draft from stream chunks.
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}
