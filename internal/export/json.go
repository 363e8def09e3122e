// File: internal/export/json.go
package export

import (
	"encoding/json"
	"io"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

// JSONExporter writes the session as indented JSON, in the same shape the
// session store persists.
type JSONExporter struct{}

func (e *JSONExporter) Export(session *domain.ChatSession, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(session)
}

func (e *JSONExporter) Extension() string {
	return "json"
}
