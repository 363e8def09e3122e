// File: internal/markdown/render.go
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderHTML normalizes assistant content and renders it as an HTML
// fragment. Used by the HTML transcript exporter.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(Normalize(content)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
