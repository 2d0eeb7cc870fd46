// Package document turns uploaded files into plain text plus structural
// hints. A fixed set of text formats is handled directly; PDF, DOCX and
// XLSX go through an optional capability registry and degrade gracefully
// when no parser is registered.
package document

import (
	"fmt"
)

// Input is one uploaded file as received from the UI layer.
type Input struct {
	Name      string
	Size      int64
	MediaType string
	Data      []byte
}

// ParsedFile is one extracted document. It is created once per upload,
// immutable thereafter, and replaced wholesale on re-generation.
type ParsedFile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Size      int64    `json:"size"`
	MediaType string   `json:"type"`
	Ext       string   `json:"ext"`
	Language  string   `json:"language"`
	Text      string   `json:"text"`
	Headings  []string `json:"headings,omitempty"`

	// Notice carries a user-facing degradation message (missing parser,
	// parse failure). Empty when extraction succeeded cleanly.
	Notice string `json:"notice,omitempty"`
}

// FileSizeHuman returns a human-readable file size.
func (p ParsedFile) FileSizeHuman() string {
	bytes := p.Size
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
