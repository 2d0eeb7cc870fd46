package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxHeadings = 20

// markdownHeadings walks the markdown AST and returns heading texts in
// document order, capped at maxHeadings.
func markdownHeadings(source []byte) []string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || len(headings) >= maxHeadings {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if t := headingText(h, source); t != "" {
			headings = append(headings, t)
		}
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
