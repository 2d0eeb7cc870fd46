// Package candidate renders tone-specific prompt drafts from a set of
// extracted documents.
package candidate

import (
	"github.com/google/uuid"

	"github.com/draftforge/draftforge/internal/document"
	"github.com/draftforge/draftforge/internal/summarize"
)

// Tone is one of the three supported prompt tones.
type Tone string

const (
	ToneFormal        Tone = "Structured & Formal"
	ToneCreative      Tone = "Exploratory & Creative"
	ToneDeterministic Tone = "Input/Output Driven"
)

// Tones lists the supported tones in construction order.
var Tones = []Tone{ToneFormal, ToneCreative, ToneDeterministic}

// ParseTone maps a request string onto the closed tone set. Unknown
// values fall back to ToneFormal.
func ParseTone(s string) Tone {
	for _, t := range Tones {
		if string(t) == s {
			return t
		}
	}
	return ToneFormal
}

// SummaryEntry is the per-file summary shown alongside candidates.
type SummaryEntry struct {
	Name     string   `json:"name"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// PromptCandidate is one fully rendered prompt draft.
type PromptCandidate struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tone    Tone   `json:"tone"`
	Content string `json:"content"`
}

// Result is the output of one generation cycle. Summaries, themes and
// candidates always come from the same snapshot of the file set.
type Result struct {
	Summaries  []SummaryEntry    `json:"summaries"`
	Themes     []string          `json:"themes"`
	Candidates []PromptCandidate `json:"candidates"`
}

// Generate runs the summary engine over every file, aggregates themes,
// assembles the bounded shared context, and renders one candidate per
// tone, reordered so the selected tone sorts first.
func Generate(files []document.ParsedFile, selected Tone) (*Result, error) {
	summaries := make([]SummaryEntry, 0, len(files))
	keywordLists := make([][]string, 0, len(files))
	for _, f := range files {
		r := summarize.Summarize(f.Text, summarize.DefaultMaxSentences)
		summaries = append(summaries, SummaryEntry{
			Name:     f.Name,
			Summary:  r.Summary,
			Keywords: r.Keywords,
		})
		keywordLists = append(keywordLists, r.Keywords)
	}

	themes := summarize.Themes(keywordLists, summarize.DefaultMaxThemes)
	context := truncateContext(assembleContext(files), maxContextChars)

	candidates := make([]PromptCandidate, 0, len(Tones))
	for _, tone := range Tones {
		content, err := render(tone, context, themes)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, PromptCandidate{
			ID:      uuid.NewString(),
			Title:   titles[tone],
			Tone:    tone,
			Content: content,
		})
	}

	return &Result{
		Summaries:  summaries,
		Themes:     themes,
		Candidates: reorder(candidates, selected),
	}, nil
}

// reorder stable-sorts the selected tone first; the relative order of
// the other candidates is preserved.
func reorder(candidates []PromptCandidate, selected Tone) []PromptCandidate {
	out := make([]PromptCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Tone == selected {
			out = append(out, c)
		}
	}
	for _, c := range candidates {
		if c.Tone != selected {
			out = append(out, c)
		}
	}
	return out
}
