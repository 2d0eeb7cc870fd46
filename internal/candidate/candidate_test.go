package candidate

import (
	"strings"
	"testing"

	"github.com/draftforge/draftforge/internal/document"
)

func sampleFiles() []document.ParsedFile {
	return []document.ParsedFile{
		{
			Name: "notes.md",
			Text: "The pipeline ingests documents. Extraction runs per file. Summaries follow extraction.",
		},
		{
			Name: "design.txt",
			Text: "The pipeline favors extraction speed. Documents arrive as uploads.",
		},
	}
}

func TestGenerate(t *testing.T) {
	res, err := Generate(sampleFiles(), ToneCreative)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(res.Candidates) != len(Tones) {
		t.Fatalf("got %d candidates, want %d", len(res.Candidates), len(Tones))
	}
	if res.Candidates[0].Tone != ToneCreative {
		t.Errorf("first candidate tone = %q, want selected tone %q", res.Candidates[0].Tone, ToneCreative)
	}
	// The unselected tones keep their construction order.
	if res.Candidates[1].Tone != ToneFormal || res.Candidates[2].Tone != ToneDeterministic {
		t.Errorf("trailing tones = %q, %q; want %q, %q",
			res.Candidates[1].Tone, res.Candidates[2].Tone, ToneFormal, ToneDeterministic)
	}

	seen := map[string]bool{}
	for _, c := range res.Candidates {
		if c.ID == "" {
			t.Error("candidate has empty ID")
		}
		if seen[c.ID] {
			t.Errorf("duplicate candidate ID %q", c.ID)
		}
		seen[c.ID] = true
		if c.Title == "" {
			t.Errorf("candidate %q has empty title", c.Tone)
		}
		if !strings.Contains(c.Content, "File: notes.md") {
			t.Errorf("candidate %q content missing file context", c.Tone)
		}
	}

	if len(res.Summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(res.Summaries))
	}
	if res.Summaries[0].Name != "notes.md" || res.Summaries[1].Name != "design.txt" {
		t.Errorf("summaries out of input order: %q, %q", res.Summaries[0].Name, res.Summaries[1].Name)
	}
	if res.Summaries[0].Summary == "" {
		t.Error("summary for notes.md is empty")
	}
	if len(res.Themes) == 0 {
		t.Error("no themes detected across overlapping files")
	}
}

func TestGenerateNoFiles(t *testing.T) {
	res, err := Generate(nil, ToneFormal)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(res.Candidates) != len(Tones) {
		t.Fatalf("got %d candidates, want %d", len(res.Candidates), len(Tones))
	}
	for _, c := range res.Candidates {
		if !strings.Contains(c.Content, "(none detected)") {
			t.Errorf("candidate %q missing the empty-theme placeholder", c.Tone)
		}
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		in   string
		want Tone
	}{
		{"Structured & Formal", ToneFormal},
		{"Exploratory & Creative", ToneCreative},
		{"Input/Output Driven", ToneDeterministic},
		{"", ToneFormal},
		{"casual", ToneFormal},
	}

	for _, tt := range tests {
		if got := ParseTone(tt.in); got != tt.want {
			t.Errorf("ParseTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
