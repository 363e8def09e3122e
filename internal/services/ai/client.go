// File: internal/services/ai/client.go
package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Wire markers of the chat stream. Each line of the response body is either
// a data line, a comment, the termination sentinel or an error record.
const (
	dataPrefix   = "data:"
	doneSentinel = "[DONE]"
	errorPrefix  = "[ERROR]"
)

// Client consumes the platform's SSE-like chat stream over a single
// long-lived POST request.
//
// No timeout is set on the HTTP client: a reply may stream for as long as
// the model keeps talking. Cancellation happens through the caller's
// context, which aborts the connection.
type Client struct {
	config *Config
	http   *http.Client
	token  TokenSource
	logger Logger
}

func NewClient(config *Config, token TokenSource, logger Logger) *Client {
	return &Client{
		config: config,
		http:   &http.Client{},
		token:  token,
		logger: logger,
	}
}

// ChatStream sends the request and forwards decoded stream events to cb.
// All failures are delivered through cb.OnError; nothing is returned or
// thrown to the caller.
func (c *Client) ChatStream(ctx context.Context, req Request, cb Callbacks) {
	body, err := json.Marshal(req)
	if err != nil {
		cb.OnError(err.Error())
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+c.config.StreamPath, bytes.NewReader(body))
	if err != nil {
		cb.OnError(err.Error())
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("chat stream request failed", "error", err)
		cb.OnError(err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		cb.OnError(c.statusMessage(resp))
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, dataPrefix) {
			content := strings.TrimSpace(line[len(dataPrefix):])
			if content == "" || content == doneSentinel {
				continue
			}
			if strings.HasPrefix(content, errorPrefix) {
				cb.OnError(strings.TrimPrefix(content, errorPrefix))
				return
			}
			cb.OnChunk(content)
			continue
		}

		// Lines outside the SSE framing: skip blanks and comments, forward
		// direct content verbatim.
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if strings.HasPrefix(line, errorPrefix) {
			cb.OnError(strings.TrimPrefix(line, errorPrefix))
			return
		}
		cb.OnChunk(line)
	}

	if err := scanner.Err(); err != nil {
		c.logger.Error("chat stream read failed", "error", err)
		cb.OnError(err.Error())
		return
	}
	cb.OnDone()
}

// statusMessage builds the user-facing message for a non-2xx response,
// preferring the msg field of a JSON error body.
func (c *Client) statusMessage(resp *http.Response) string {
	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Msg != "" {
		return payload.Msg
	}
	return fmt.Sprintf("请求失败: %d", resp.StatusCode)
}
