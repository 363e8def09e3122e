// File: internal/services/session/store.go
package session

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/storage"
)

const (
	// StorageKey is the single namespaced key the serialized session
	// collection lives under.
	StorageKey = "ai_chat_sessions"

	// MaxSessions bounds how many sessions persist survives; older sessions
	// are silently dropped, not archived.
	MaxSessions = 50
)

// Store owns the chat session collection, the current selection and their
// persistence. The collection is kept ordered by UpdatedAt descending and
// re-serialized wholesale on every mutation.
//
// Not safe for concurrent use; the client drives it from a single goroutine.
type Store struct {
	kv     storage.Store
	logger Logger
	now    func() time.Time

	sessions  []domain.ChatSession
	currentID string
}

// NewStore loads the persisted collection and selects the most recent
// session. Unreadable stored state is logged and treated as empty.
func NewStore(kv storage.Store, logger Logger) *Store {
	s := &Store{kv: kv, logger: logger, now: time.Now}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := s.kv.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("loading chat history failed", "error", err)
		}
		return
	}
	var sessions []domain.ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		// Corrupt history must never take the client down.
		s.logger.Error("stored chat history is unreadable, starting empty", "error", err)
		return
	}
	s.sessions = sessions
	if len(sessions) > 0 {
		s.currentID = sessions[0].ID
	}
}

// persist truncates to the retention cap and writes the whole collection
// back. Write failures are logged and swallowed; in-memory state stays
// authoritative.
func (s *Store) persist() {
	if len(s.sessions) > MaxSessions {
		s.sessions = s.sessions[:MaxSessions]
	}
	raw, err := json.Marshal(s.sessions)
	if err != nil {
		s.logger.Error("serializing chat history failed", "error", err)
		return
	}
	if err := s.kv.Set(StorageKey, string(raw)); err != nil {
		s.logger.Error("saving chat history failed", "error", err)
	}
}

// CreateSession builds a new session seeded with the assistant greeting,
// inserts it at the front, persists and selects it. The session is returned
// synchronously so the caller can send the first message right away.
func (s *Store) CreateSession() domain.ChatSession {
	now := s.now()
	sess := domain.ChatSession{
		ID:    domain.NewSessionID(now),
		Title: domain.DefaultTitle,
		Messages: []domain.ChatMessage{
			{Role: domain.RoleAssistant, Content: domain.Greeting},
		},
		CreatedAt: now.UnixMilli(),
		UpdatedAt: now.UnixMilli(),
	}
	s.sessions = append([]domain.ChatSession{sess}, s.sessions...)
	s.persist()
	s.currentID = sess.ID
	return sess
}

// UpdateMessages replaces the named session's transcript, re-derives the
// title, touches UpdatedAt, re-sorts and persists. An unknown id is
// tolerated: nothing matches, but the collection is still persisted.
func (s *Store) UpdateMessages(sessionID string, messages []domain.ChatMessage) {
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions[i].Messages = messages
			s.sessions[i].Title = domain.DeriveTitle(messages)
			s.sessions[i].UpdatedAt = s.now().UnixMilli()
			break
		}
	}
	sort.SliceStable(s.sessions, func(i, j int) bool {
		return s.sessions[i].UpdatedAt > s.sessions[j].UpdatedAt
	})
	s.persist()
}

// DeleteSession removes the session and persists. When the deleted session
// was selected, selection moves to the new first session, or empties.
func (s *Store) DeleteSession(sessionID string) {
	filtered := make([]domain.ChatSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if sess.ID != sessionID {
			filtered = append(filtered, sess)
		}
	}
	s.sessions = filtered
	s.persist()

	if s.currentID == sessionID {
		if len(s.sessions) > 0 {
			s.currentID = s.sessions[0].ID
		} else {
			s.currentID = ""
		}
	}
}

// ClearAllSessions empties the collection and the selection.
func (s *Store) ClearAllSessions() {
	s.sessions = nil
	s.persist()
	s.currentID = ""
}

// SwitchSession selects the given id without checking it exists; the check
// is deferred to CurrentSession.
func (s *Store) SwitchSession(sessionID string) {
	s.currentID = sessionID
}

// Sessions returns the collection, most recently active first.
func (s *Store) Sessions() []domain.ChatSession {
	return s.sessions
}

// CurrentSession validates the selection lazily: when the selected id is
// absent the first session takes over, and nil is returned only when the
// collection is empty.
func (s *Store) CurrentSession() *domain.ChatSession {
	if s.currentID != "" {
		for i := range s.sessions {
			if s.sessions[i].ID == s.currentID {
				return &s.sessions[i]
			}
		}
	}
	if len(s.sessions) > 0 {
		s.currentID = s.sessions[0].ID
		return &s.sessions[0]
	}
	s.currentID = ""
	return nil
}

// CurrentID returns the selected session id, or "" when nothing is selected.
func (s *Store) CurrentID() string {
	return s.currentID
}
