// File: internal/domain/session.go
package domain

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

const (
	// DefaultTitle is used until the session has a user message to derive from.
	DefaultTitle = "新对话"

	// Greeting seeds every new session as its first assistant message.
	Greeting = "您好！我是华夏历史AI助手。请问有什么关于中国历史的问题想要了解吗？"

	// titleRuneLimit caps a derived title at this many runes.
	titleRuneLimit = 20
)

// ChatSession is one conversation thread with its derived title.
//
// Timestamps are Unix milliseconds so the persisted JSON stays compatible
// with the history format of the web client.
type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
}

// NewSessionID builds an opaque session id from a base-36 millisecond
// timestamp and a base-36 random suffix. Collisions are negligible.
func NewSessionID(now time.Time) string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	return strconv.FormatInt(now.UnixMilli(), 36) + suffix
}

// DeriveTitle computes a session title from the first user message: its
// first 20 runes, with an ellipsis if truncated. Sessions without a user
// message keep DefaultTitle.
func DeriveTitle(messages []ChatMessage) string {
	for _, m := range messages {
		if m.Role != RoleUser {
			continue
		}
		runes := []rune(m.Content)
		if len(runes) > titleRuneLimit {
			return string(runes[:titleRuneLimit]) + "..."
		}
		return m.Content
	}
	return DefaultTitle
}
