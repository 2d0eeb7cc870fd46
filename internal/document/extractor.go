package document

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Extractor converts uploaded files into ParsedFiles.
type Extractor struct {
	registry Registry
	logger   *slog.Logger
}

// NewExtractor creates an Extractor. A nil registry means no binary
// format support; a nil logger falls back to slog.Default.
func NewExtractor(registry Registry, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{registry: registry, logger: logger}
}

// languageByExt labels recognized text and source formats.
var languageByExt = map[string]string{
	"md":    "Markdown",
	"txt":   "Plain Text",
	"ipynb": "Jupyter Notebook",
	"html":  "HTML",
	"htm":   "HTML",
	"go":    "Go",
	"py":    "Python",
	"js":    "JavaScript",
	"jsx":   "JavaScript",
	"ts":    "TypeScript",
	"tsx":   "TypeScript",
	"rb":    "Ruby",
	"rs":    "Rust",
	"java":  "Java",
	"c":     "C",
	"h":     "C",
	"cpp":   "C++",
	"cs":    "C#",
	"sh":    "Shell",
	"sql":   "SQL",
	"css":   "CSS",
	"json":  "JSON",
	"yaml":  "YAML",
	"yml":   "YAML",
	"toml":  "TOML",
	"xml":   "XML",
	"csv":   "CSV",
}

// ExtractAll runs extraction over every file concurrently and returns
// results in input order. A failure on one file never aborts the batch:
// it degrades to a placeholder ParsedFile carrying a notice.
func (e *Extractor) ExtractAll(ctx context.Context, files []Input) []ParsedFile {
	results := make([]ParsedFile, len(files))

	var wg sync.WaitGroup
	for i, in := range files {
		wg.Add(1)
		go func(i int, in Input) {
			defer wg.Done()
			results[i] = e.Extract(ctx, in)
		}(i, in)
	}
	wg.Wait()

	return results
}

// Extract converts one file. It never fails: unparseable content and
// a canceled context both degrade to an empty-text record with a
// notice.
func (e *Extractor) Extract(ctx context.Context, in Input) ParsedFile {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.Name), "."))

	pf := ParsedFile{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Size:      in.Size,
		MediaType: in.MediaType,
		Ext:       ext,
	}

	if err := ctx.Err(); err != nil {
		pf.Notice = fmt.Sprintf("Extraction of %q was canceled: %v", in.Name, err)
		return pf
	}

	switch ext {
	case "pdf", "docx", "xlsx":
		pf.Language = strings.ToUpper(ext)
		parser, ok := e.registry[ext]
		if !ok {
			pf.Notice = fmt.Sprintf("No %s parser is available in this build; %q was skipped.", strings.ToUpper(ext), in.Name)
			e.logger.Info("binary parser absent", "ext", ext, "file", in.Name)
			return pf
		}
		text, err := parser.Parse(in.Data)
		if err != nil {
			pf.Notice = fmt.Sprintf("Could not read %q as %s: %v", in.Name, strings.ToUpper(ext), err)
			e.logger.Warn("binary parse failed", "ext", ext, "file", in.Name, "error", err)
			return pf
		}
		pf.Text = text
		return pf

	case "html", "htm":
		pf.Language = "HTML"
		text, headings := extractHTML(in.Data)
		pf.Text = text
		pf.Headings = headings
		return pf

	case "ipynb":
		pf.Language = "Jupyter Notebook"
		text, headings := extractNotebook(in.Data)
		pf.Text = text
		pf.Headings = headings
		return pf

	case "md":
		pf.Language = "Markdown"
		pf.Text = string(in.Data)
		pf.Headings = markdownHeadings(in.Data)
		return pf

	default:
		if lang, ok := languageByExt[ext]; ok {
			pf.Language = lang
			pf.Text = string(in.Data)
			return pf
		}
		pf.Language = "Unknown"
		return pf
	}
}
