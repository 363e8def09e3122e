// File: internal/export/interface.go
package export

import (
	"fmt"
	"io"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

// Exporter writes one chat session transcript in a concrete format.
type Exporter interface {
	Export(session *domain.ChatSession, w io.Writer) error
	Extension() string
}

// NewExporter creates an exporter for the given format name.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "html":
		return &HTMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: md, json, yaml, html)", format)
	}
}
