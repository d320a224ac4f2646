package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/epeers/rsiv/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.md
var templates embed.FS

// reportTemplates holds report.md and its partials, each named after its file.
var reportTemplates = template.Must(template.ParseFS(templates, "templates/*.md"))

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderReport renders an analysis to markdown.
func RenderReport(a *models.AnalysisResponse, opts ReportOptions) (string, error) {
	var b strings.Builder
	if err := reportTemplates.ExecuteTemplate(&b, "report.md", NewReport(a, opts)); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}

// ToHTML converts a markdown report into an HTML fragment.
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
