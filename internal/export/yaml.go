// File: internal/export/yaml.go
package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

// YAMLExporter writes the session as a YAML document.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(session *domain.ChatSession, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(session)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
