// File: internal/services/session/store_test.go
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/services"
	"github.com/huaxia-history/go-huaxia/internal/storage"
)

// fakeClock hands out strictly increasing timestamps so UpdatedAt ordering
// is deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	store := NewStore(kv, services.NoOpLogger{})
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	store.now = clock.Now
	return store, kv
}

func userMsg(content string) domain.ChatMessage {
	return domain.ChatMessage{Role: domain.RoleUser, Content: content}
}

func TestCreateSessionSeedsGreetingAndSelects(t *testing.T) {
	store, kv := newTestStore(t)

	sess := store.CreateSession()

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, domain.DefaultTitle, sess.Title)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, domain.RoleAssistant, sess.Messages[0].Role)
	assert.Equal(t, domain.Greeting, sess.Messages[0].Content)
	assert.Equal(t, sess.ID, store.CurrentID())

	// Already persisted.
	raw, err := kv.Get(StorageKey)
	require.NoError(t, err)
	var persisted []domain.ChatSession
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, sess.ID, persisted[0].ID)
}

func TestSessionIDsAreUnique(t *testing.T) {
	store, _ := newTestStore(t)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.CreateSession().ID
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUpdateMessagesDerivesTitle(t *testing.T) {
	store, _ := newTestStore(t)
	sess := store.CreateSession()

	tests := []struct {
		content string
		want    string
	}{
		{"秦始皇为什么要统一六国？", "秦始皇为什么要统一六国？"},
		{strings.Repeat("汉", 20), strings.Repeat("汉", 20)},
		{strings.Repeat("汉", 21), strings.Repeat("汉", 20) + "..."},
		{"丝绸之路的历史意义是什么？这条路线连接了东西方文明。", "丝绸之路的历史意义是什么？这条路线连接了..."},
	}
	for _, tt := range tests {
		store.UpdateMessages(sess.ID, []domain.ChatMessage{userMsg(tt.content)})
		assert.Equal(t, tt.want, store.Sessions()[0].Title)
	}

	// Without a user message the title falls back to the default.
	store.UpdateMessages(sess.ID, []domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: domain.Greeting},
	})
	assert.Equal(t, domain.DefaultTitle, store.Sessions()[0].Title)
}

func TestUpdateMessagesResortsByRecency(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.CreateSession()
	second := store.CreateSession()

	// second is newest and sits in front.
	assert.Equal(t, second.ID, store.Sessions()[0].ID)

	// Touching first moves it back to the front.
	store.UpdateMessages(first.ID, []domain.ChatMessage{userMsg("唐朝")})
	sessions := store.Sessions()
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)
	assert.GreaterOrEqual(t, sessions[0].UpdatedAt, sessions[1].UpdatedAt)
}

func TestUpdateMessagesUnknownIDIsTolerated(t *testing.T) {
	store, kv := newTestStore(t)
	store.CreateSession()
	_ = kv.Delete(StorageKey)

	store.UpdateMessages("no-such-id", []domain.ChatMessage{userMsg("x")})

	// No session changed, but the collection was still persisted.
	assert.Equal(t, domain.DefaultTitle, store.Sessions()[0].Title)
	_, err := kv.Get(StorageKey)
	assert.NoError(t, err)
}

func TestRetentionCap(t *testing.T) {
	store, kv := newTestStore(t)
	for i := 0; i < MaxSessions+7; i++ {
		store.CreateSession()
	}

	assert.Len(t, store.Sessions(), MaxSessions)

	raw, err := kv.Get(StorageKey)
	require.NoError(t, err)
	var persisted []domain.ChatSession
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Len(t, persisted, MaxSessions)

	// Ordered by UpdatedAt descending after any persisting operation.
	for i := 1; i < len(persisted); i++ {
		assert.GreaterOrEqual(t, persisted[i-1].UpdatedAt, persisted[i].UpdatedAt)
	}
}

func TestDeleteCurrentSessionMovesSelection(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.CreateSession()
	second := store.CreateSession()

	store.DeleteSession(second.ID)
	assert.Equal(t, first.ID, store.CurrentID())

	store.DeleteSession(first.ID)
	assert.Empty(t, store.CurrentID())
	assert.Nil(t, store.CurrentSession())
}

func TestDeleteOtherSessionKeepsSelection(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.CreateSession()
	second := store.CreateSession()

	store.DeleteSession(first.ID)
	assert.Equal(t, second.ID, store.CurrentID())
}

func TestClearAllSessions(t *testing.T) {
	store, _ := newTestStore(t)
	store.CreateSession()
	store.CreateSession()

	store.ClearAllSessions()
	assert.Empty(t, store.Sessions())
	assert.Empty(t, store.CurrentID())
	assert.Nil(t, store.CurrentSession())
}

func TestSwitchSessionValidatesLazily(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.CreateSession()

	// Switching to a bogus id succeeds immediately...
	store.SwitchSession("bogus")
	assert.Equal(t, "bogus", store.CurrentID())

	// ...and resolves to the first session at read time.
	current := store.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, first.ID, current.ID)
	assert.Equal(t, first.ID, store.CurrentID())
}

func TestLoadRestoresMostRecentSelection(t *testing.T) {
	kv := storage.NewMemoryStore()
	first := NewStore(kv, services.NoOpLogger{})
	a := first.CreateSession()
	b := first.CreateSession()
	_ = a

	reloaded := NewStore(kv, services.NoOpLogger{})
	require.Len(t, reloaded.Sessions(), 2)
	assert.Equal(t, b.ID, reloaded.CurrentID())
}

func TestCorruptHistoryFailsOpen(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(StorageKey, "{not json"))

	store := NewStore(kv, services.NoOpLogger{})
	assert.Empty(t, store.Sessions())
	assert.Nil(t, store.CurrentSession())

	// The store keeps working afterwards.
	sess := store.CreateSession()
	assert.Equal(t, sess.ID, store.CurrentID())
}

// failingStore rejects writes; reads pass through.
type failingStore struct {
	storage.Store
}

func (f failingStore) Set(key, value string) error {
	return errors.New("disk full")
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	store := NewStore(failingStore{storage.NewMemoryStore()}, services.NoOpLogger{})

	sess := store.CreateSession()
	store.UpdateMessages(sess.ID, []domain.ChatMessage{userMsg("明朝")})

	require.Len(t, store.Sessions(), 1)
	assert.Equal(t, "明朝", store.Sessions()[0].Title)
	assert.Equal(t, sess.ID, store.CurrentID())
}

func TestTitlePropertyAcrossUpdates(t *testing.T) {
	store, _ := newTestStore(t)
	sess := store.CreateSession()

	messages := []domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: domain.Greeting},
	}
	for i := 0; i < 5; i++ {
		messages = append(messages, userMsg(fmt.Sprintf("问题%d：历史上发生了什么重要的事情呢？", i)))
		messages = append(messages, domain.ChatMessage{Role: domain.RoleAssistant, Content: "答复"})
		store.UpdateMessages(sess.ID, messages)

		want := domain.DeriveTitle(messages)
		assert.Equal(t, want, store.Sessions()[0].Title)
		// The title always tracks the FIRST user message.
		assert.Equal(t, domain.DeriveTitle(messages[:2]), want)
	}
}
