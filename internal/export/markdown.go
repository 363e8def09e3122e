// File: internal/export/markdown.go
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/markdown"
)

// MarkdownExporter writes the transcript as a Markdown document. Assistant
// content is normalized so run-together headings and lists render cleanly.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(session *domain.ChatSession, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", session.Title)
	_, _ = fmt.Fprintf(w, "**创建时间:** %s  \n", formatMillis(session.CreatedAt))
	_, _ = fmt.Fprintf(w, "**更新时间:** %s  \n", formatMillis(session.UpdatedAt))
	_, _ = fmt.Fprintf(w, "**消息数:** %d\n\n", len(session.Messages))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range session.Messages {
		content := msg.Content
		if msg.Role == domain.RoleAssistant {
			content = markdown.Normalize(content)
		}
		_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", roleLabel(msg.Role), content)
		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}
	return nil
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}

func roleLabel(role string) string {
	switch role {
	case domain.RoleUser:
		return "用户"
	case domain.RoleAssistant:
		return "AI助手"
	default:
		return role
	}
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}
