// File: internal/services/llm/canned.go
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

// CannedResponder produces a fixed-format reply without any upstream
// dependency. Used when no API key is configured, so the server stays
// runnable in local development.
type CannedResponder struct {
	// Delay between deltas; zero streams at full speed.
	Delay time.Duration
}

func (r *CannedResponder) StreamReply(ctx context.Context, history []domain.ChatMessage, onDelta func(string) error) error {
	question := lastUserMessage(history)
	reply := fmt.Sprintf(
		"## 关于「%s」\n\n这是一个本地开发环境的占位回答。\n\n- 配置 OPENAI_API_KEY 后可获得真实的AI回答\n- 当前问题会被完整转发给上游模型\n\n感谢使用华夏历史AI助手。",
		question)

	for _, delta := range strings.SplitAfter(reply, "\n") {
		if delta == "" {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := onDelta(delta); err != nil {
			return err
		}
		if r.Delay > 0 {
			time.Sleep(r.Delay)
		}
	}
	return nil
}

func lastUserMessage(history []domain.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleUser {
			return history[i].Content
		}
	}
	return ""
}
