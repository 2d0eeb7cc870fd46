package document

import (
	"encoding/json"
	"strings"
)

// notebook is the subset of the Jupyter .ipynb schema we read. Cell
// source appears either as a string or as a list of lines.
type notebook struct {
	Cells []notebookCell `json:"cells"`
}

type notebookCell struct {
	CellType string          `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
}

// extractNotebook concatenates every cell's source with blank lines
// between cells, and scans markdown cells for ATX headings. Malformed
// JSON falls back to the raw text with no headings.
func extractNotebook(data []byte) (string, []string) {
	var nb notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return string(data), nil
	}

	var parts []string
	var headings []string
	for _, cell := range nb.Cells {
		src := cellSource(cell.Source)
		if strings.TrimSpace(src) == "" {
			continue
		}
		parts = append(parts, src)

		if cell.CellType != "markdown" {
			continue
		}
		for _, line := range strings.Split(src, "\n") {
			if len(headings) >= maxHeadings {
				break
			}
			if h, ok := atxHeading(line); ok {
				headings = append(headings, h)
			}
		}
	}

	return strings.Join(parts, "\n\n"), headings
}

func cellSource(raw json.RawMessage) string {
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, "")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

// atxHeading matches "# heading" through "###### heading" and returns
// the text with leading hashes stripped.
func atxHeading(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 || level == len(trimmed) || trimmed[level] != ' ' {
		return "", false
	}
	text := strings.TrimSpace(trimmed[level:])
	if text == "" {
		return "", false
	}
	return text, true
}
