package document

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// extractHTML strips script/style blocks and markup, collapses
// whitespace, and detects headings heuristically: short capitalized
// lines among the visible text blocks.
func extractHTML(data []byte) (string, []string) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		// html.Parse is extremely tolerant; treat a hard failure as
		// unreadable markup rather than an error.
		return "", nil
	}

	var blocks []string
	collectBlocks(doc, &blocks)

	var headings []string
	for _, b := range blocks {
		if len(headings) >= maxHeadings {
			break
		}
		if isHeadingLine(b) {
			headings = append(headings, b)
		}
	}

	return strings.Join(blocks, "\n"), headings
}

// collectBlocks walks the DOM and gathers visible text, one entry per
// block of contiguous inline content.
func collectBlocks(n *html.Node, blocks *[]string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript:
			return
		}
	}

	if n.Type == html.TextNode {
		text := collapseSpace(n.Data)
		if text != "" {
			*blocks = append(*blocks, text)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectBlocks(c, blocks)
	}
}

// isHeadingLine is the heading heuristic: shorter than 120 runes and
// starting with an uppercase letter.
func isHeadingLine(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 || len(runes) >= 120 {
		return false
	}
	return unicode.IsUpper(runes[0])
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
