// File: internal/services/chat/config.go
package chat

import "fmt"

// Config holds orchestrator settings.
type Config struct {
	// ErrorReply is committed as the assistant message when streaming
	// fails. The raw transport error is only logged, never shown.
	ErrorReply string
}

func (c *Config) Validate() error {
	if c.ErrorReply == "" {
		return fmt.Errorf("error_reply is required")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		ErrorReply: "抱歉，AI助手暂时遇到了问题，请稍后再试。",
	}
}
