package candidate

import (
	"strings"

	"github.com/draftforge/draftforge/internal/document"
)

const (
	// maxContextChars bounds the shared context embedded in each
	// candidate.
	maxContextChars = 4800

	// truncationMarker joins the head and tail segments when the
	// context is cut down.
	truncationMarker = "\n\n[...]\n\n"

	headShare = 0.7
	tailShare = 0.2
)

// assembleContext concatenates every file's text in input order, each
// prefixed with a "File:" header and separated by a blank line.
func assembleContext(files []document.ParsedFile) string {
	var parts []string
	for _, f := range files {
		parts = append(parts, "File: "+f.Name+"\n"+f.Text)
	}
	return strings.Join(parts, "\n\n")
}

// truncateContext keeps the first 70% and last 20% of the budget,
// dropping the middle, so both the opening framing and the conclusion
// survive. Text within budget passes through untouched.
func truncateContext(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	head := int(float64(max) * headShare)
	tail := int(float64(max) * tailShare)
	return string(runes[:head]) + truncationMarker + string(runes[len(runes)-tail:])
}
