// File: internal/domain/message.go
package domain

// Message roles. The platform only distinguishes the user and the assistant.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single entry in a session transcript.
//
// Messages are immutable once appended. The in-progress assistant reply is
// replaced wholesale on each update rather than mutated in place, so slices
// of ChatMessage can be compared and diffed by value.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
