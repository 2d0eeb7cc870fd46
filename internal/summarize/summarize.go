// Package summarize derives extractive summaries and ranked keyword
// lists from plain text, and aggregates per-file keywords into
// cross-file themes.
package summarize

import (
	"strings"
	"unicode"
)

const (
	// DefaultMaxSentences is the number of leading sentences kept.
	DefaultMaxSentences = 3

	// fallbackChars bounds the summary when no sentence boundary exists.
	fallbackChars = 240

	// MaxKeywords caps the per-file keyword list.
	MaxKeywords = 10

	// DefaultMaxThemes caps the cross-file theme list.
	DefaultMaxThemes = 8
)

// Result is the summary derived from one text.
type Result struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// Summarize produces a leading-sentence summary and a frequency-ranked
// keyword list. maxSentences <= 0 means DefaultMaxSentences.
func Summarize(text string, maxSentences int) Result {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	normalized := normalizeWhitespace(stripHeadings(text))

	summary := ""
	sentences := splitSentences(normalized)
	if len(sentences) > 0 {
		if len(sentences) > maxSentences {
			sentences = sentences[:maxSentences]
		}
		summary = strings.Join(sentences, " ")
	} else if normalized != "" {
		runes := []rune(normalized)
		if len(runes) > fallbackChars {
			runes = runes[:fallbackChars]
		}
		summary = string(runes)
	}

	return Result{
		Summary:  summary,
		Keywords: Keywords(normalized, MaxKeywords),
	}
}

// stripHeadings drops ATX heading lines. Heading text is structure,
// not prose; left in place it has no sentence boundary and bleeds into
// the first sentence of the summary.
func stripHeadings(text string) string {
	if !strings.Contains(text, "#") {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isATXHeading(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// isATXHeading matches "# text" through "###### text".
func isATXHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 || level == len(trimmed) {
		return false
	}
	return trimmed[level] == ' '
}

// splitSentences splits on '.', '!' or '?' followed by whitespace,
// keeping the terminal punctuation with each sentence.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		s := strings.TrimSpace(string(runes[start : i+1]))
		if s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	return sentences
}

// Keywords tokenizes on non-alphanumeric boundaries (keeping internal
// '_' and '-'), lowercases, drops stopwords and short tokens, and
// returns the top max tokens by descending count. Ties break by first
// occurrence in the text, so identical input always ranks identically.
func Keywords(text string, max int) []string {
	counts := make(map[string]int)
	var order []string

	for _, tok := range tokenize(text) {
		if len(tok) <= 2 || stopwords[tok] {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	return topByCount(order, counts, max)
}

// Themes ranks the union of per-file keyword lists by combined
// frequency. maxThemes <= 0 means DefaultMaxThemes.
func Themes(keywordLists [][]string, maxThemes int) []string {
	if maxThemes <= 0 {
		maxThemes = DefaultMaxThemes
	}

	counts := make(map[string]int)
	var order []string
	for _, list := range keywordLists {
		for _, kw := range list {
			if kw == "" {
				continue
			}
			if counts[kw] == 0 {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	return topByCount(order, counts, maxThemes)
}

// topByCount sorts tokens by descending count, preserving first-seen
// order among equal counts, and truncates to max. The insertion sort
// over first-seen order is what makes the tie-break stable.
func topByCount(order []string, counts map[string]int, max int) []string {
	ranked := make([]string, 0, len(order))
	ranked = append(ranked, order...)

	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && counts[ranked[j]] > counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// tokenize splits on any rune that is not a letter, digit, '_' or '-',
// and lowercases the result.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-'
	})
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
