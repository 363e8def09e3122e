// File: internal/services/chat/orchestrator.go
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/markdown"
	"github.com/huaxia-history/go-huaxia/internal/services/ai"
)

// Orchestrator coordinates one conversation: it captures user input, opens
// the stream, accumulates the assistant draft and commits the finished
// reply into the session store.
//
// States move Idle -> Sending -> Streaming -> Idle. At most one stream is
// active at a time; Send while streaming is a silent no-op. Cancellation
// aborts the transport through the stream context, and a stale stream that
// still delivers callbacks after cancellation is ignored via a sequence
// number.
type Orchestrator struct {
	config *Config
	store  SessionStore
	stream ai.StreamProvider
	logger Logger

	// OnDraft receives the normalized draft after each chunk. OnFinish
	// fires after every terminal transition back to Idle, with the session
	// id and whether a message was committed. Both are optional and are
	// invoked from the stream goroutine.
	OnDraft  func(rendered string)
	OnFinish func(sessionID string, committed bool)

	mu         sync.Mutex
	state      State
	draft      strings.Builder
	transcript []domain.ChatMessage
	sessionID  string
	cancel     context.CancelFunc
	streamSeq  int
}

func NewOrchestrator(config *Config, store SessionStore, stream ai.StreamProvider, logger Logger) *Orchestrator {
	return &Orchestrator{
		config: config,
		store:  store,
		stream: stream,
		logger: logger,
	}
}

// State returns the current conversation state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Send starts a round trip for the given input. Empty input (after
// trimming) and input arriving while a stream is active are rejected as
// no-ops; the return value reports whether the send was accepted.
//
// The user message is persisted before the stream opens, so it survives
// even when the assistant reply never arrives.
func (o *Orchestrator) Send(text string) bool {
	text = strings.TrimSpace(text)

	o.mu.Lock()
	if text == "" || o.state != StateIdle {
		o.mu.Unlock()
		return false
	}
	o.state = StateSending

	sess := o.store.CurrentSession()
	if sess == nil {
		created := o.store.CreateSession()
		sess = &created
	}
	o.sessionID = sess.ID

	messages := make([]domain.ChatMessage, 0, len(sess.Messages)+1)
	messages = append(messages, sess.Messages...)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: text})
	o.store.UpdateMessages(o.sessionID, messages)
	o.transcript = messages

	o.draft.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	seq := o.streamSeq
	req := ai.Request{Message: text, History: historyContext(messages)}
	o.state = StateStreaming
	o.mu.Unlock()

	o.logger.Debug("opening chat stream", "session_id", o.sessionID)
	go o.stream.ChatStream(ctx, req, ai.Callbacks{
		OnChunk: func(content string) { o.handleChunk(seq, content) },
		OnError: func(message string) { o.handleError(seq, message) },
		OnDone:  func() { o.handleDone(seq) },
	})
	return true
}

// Cancel stops the active stream. A non-empty draft is committed as the
// assistant reply; an empty draft commits nothing.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	if o.state != StateStreaming {
		o.mu.Unlock()
		return
	}
	sessionID := o.sessionID
	committed := o.finishLocked(o.draft.String())
	o.mu.Unlock()

	o.notifyFinish(sessionID, committed)
}

func (o *Orchestrator) handleChunk(seq int, content string) {
	o.mu.Lock()
	if seq != o.streamSeq || o.state != StateStreaming {
		o.mu.Unlock()
		return
	}
	o.draft.WriteString(content)
	rendered := markdown.Normalize(o.draft.String())
	cb := o.OnDraft
	o.mu.Unlock()

	if cb != nil {
		cb(rendered)
	}
}

func (o *Orchestrator) handleDone(seq int) {
	o.mu.Lock()
	if seq != o.streamSeq || o.state != StateStreaming {
		o.mu.Unlock()
		return
	}
	sessionID := o.sessionID
	committed := o.finishLocked(o.draft.String())
	o.mu.Unlock()

	o.notifyFinish(sessionID, committed)
}

func (o *Orchestrator) handleError(seq int, message string) {
	o.mu.Lock()
	if seq != o.streamSeq || o.state != StateStreaming {
		o.mu.Unlock()
		return
	}
	o.logger.Error("chat stream failed", "session_id", o.sessionID, "error", message)
	sessionID := o.sessionID
	committed := o.finishLocked(o.config.ErrorReply)
	o.mu.Unlock()

	o.notifyFinish(sessionID, committed)
}

// finishLocked ends the active stream, commits reply when non-empty and
// returns to Idle. Callers hold the mutex.
func (o *Orchestrator) finishLocked(reply string) bool {
	o.streamSeq++
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}

	committed := false
	if reply != "" {
		messages := make([]domain.ChatMessage, 0, len(o.transcript)+1)
		messages = append(messages, o.transcript...)
		messages = append(messages, domain.ChatMessage{Role: domain.RoleAssistant, Content: reply})
		o.store.UpdateMessages(o.sessionID, messages)
		committed = true
	}

	o.transcript = nil
	o.draft.Reset()
	o.state = StateIdle
	return committed
}

func (o *Orchestrator) notifyFinish(sessionID string, committed bool) {
	if o.OnFinish != nil {
		o.OnFinish(sessionID, committed)
	}
}

// historyContext trims the transcript into the outgoing history payload:
// everything before the message being sent, minus the seeded greeting.
func historyContext(messages []domain.ChatMessage) []domain.ChatMessage {
	if len(messages) == 0 {
		return nil
	}
	prior := messages[:len(messages)-1]
	history := make([]domain.ChatMessage, 0, len(prior))
	for i, m := range prior {
		if i == 0 && m.Role == domain.RoleAssistant && m.Content == domain.Greeting {
			continue
		}
		history = append(history, m)
	}
	return history
}
