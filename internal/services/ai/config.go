// File: internal/services/ai/config.go
package ai

import "fmt"

// Config holds the streaming transport settings.
type Config struct {
	BaseURL    string // platform API base, e.g. http://localhost:8080/api
	StreamPath string // chat stream endpoint, relative to BaseURL
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.StreamPath == "" {
		return fmt.Errorf("stream_path is required")
	}
	return nil
}

func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		StreamPath: "/ai/chat/stream",
	}
}
