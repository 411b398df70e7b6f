// ABOUTME: Full-document export and import in JSON, YAML, and Markdown.
// ABOUTME: The versioned envelope wraps the snapshot verbatim for backups.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/willow/internal/store"
	"gopkg.in/yaml.v3"
)

// ExportData is the full backup envelope. The document has no schema version
// of its own; the envelope carries one instead.
type ExportData struct {
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	Tool       string          `json:"tool" yaml:"tool"`
	Document   *store.Document `json:"document" yaml:"document"`
}

func newExportData(doc *store.Document) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "willow",
		Document:   doc,
	}
}

// ExportJSON serializes the whole document for backup/restore.
func ExportJSON(doc *store.Document) ([]byte, error) {
	return json.MarshalIndent(newExportData(doc), "", "  ")
}

// ExportYAML serializes the whole document as human-readable YAML.
func ExportYAML(doc *store.Document) ([]byte, error) {
	return yaml.Marshal(newExportData(doc))
}

// ExportMarkdown renders the whole document as an all-range report with every
// section enabled.
func ExportMarkdown(doc *store.Document) string {
	return Build(doc, Range{Kind: RangeAll}, AllSections()).Markdown()
}

// ImportJSON decodes a JSON backup back into a document.
func ImportJSON(data []byte) (*store.Document, error) {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if export.Document == nil {
		return nil, fmt.Errorf("backup has no document")
	}
	return export.Document, nil
}
