// File: internal/export/html.go
package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/markdown"
)

// HTMLExporter writes a standalone HTML page. Assistant replies are
// Markdown and get rendered; user input is plain text and gets escaped.
type HTMLExporter struct{}

func (e *HTMLExporter) Export(session *domain.ChatSession, w io.Writer) error {
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 48rem; margin: 2rem auto; font-family: sans-serif; line-height: 1.6; }
.message { margin-bottom: 1.5rem; padding: 1rem; border-radius: 8px; }
.user { background: #f0f4ff; }
.assistant { background: #f7f7f7; }
.role { font-weight: bold; margin-bottom: 0.5rem; }
</style>
</head>
<body>
<h1>%s</h1>
<p>%s · %d 条消息</p>
`, html.EscapeString(session.Title), html.EscapeString(session.Title),
		formatMillis(session.CreatedAt), len(session.Messages))

	for _, msg := range session.Messages {
		var body string
		if msg.Role == domain.RoleAssistant {
			rendered, err := markdown.RenderHTML(msg.Content)
			if err != nil {
				return fmt.Errorf("rendering assistant message: %w", err)
			}
			body = rendered
		} else {
			body = "<p>" + strings.ReplaceAll(html.EscapeString(msg.Content), "\n", "<br>") + "</p>"
		}
		_, _ = fmt.Fprintf(w, "<div class=\"message %s\">\n<div class=\"role\">%s</div>\n%s</div>\n",
			cssClass(msg.Role), roleLabel(msg.Role), body)
	}

	_, _ = io.WriteString(w, "</body>\n</html>\n")
	return nil
}

func (e *HTMLExporter) Extension() string {
	return "html"
}

func cssClass(role string) string {
	if role == domain.RoleUser {
		return "user"
	}
	return "assistant"
}
