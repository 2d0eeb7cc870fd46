package candidate

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.md"))

var templateByTone = map[Tone]string{
	ToneFormal:        "structured.md",
	ToneCreative:      "creative.md",
	ToneDeterministic: "deterministic.md",
}

var titles = map[Tone]string{
	ToneFormal:        "Structured Brief",
	ToneCreative:      "Exploratory Ideas",
	ToneDeterministic: "Input/Output Contract",
}

const maxTemplateThemes = 8

type templateData struct {
	Context   string
	ThemeList string
}

func render(tone Tone, context string, themes []string) (string, error) {
	if len(themes) > maxTemplateThemes {
		themes = themes[:maxTemplateThemes]
	}
	themeList := strings.Join(themes, ", ")
	if themeList == "" {
		themeList = "(none detected)"
	}

	var sb strings.Builder
	err := templates.ExecuteTemplate(&sb, templateByTone[tone], templateData{
		Context:   context,
		ThemeList: themeList,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}
