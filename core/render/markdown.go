// Package render — Markdown renderer.
// Converts the HTML extract to Markdown when the summary carries one,
// otherwise falls back to the plain extract.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikiroulette/core"
	"github.com/gaurav-prasanna/wikiroulette/core/extract"
	"github.com/gaurav-prasanna/wikiroulette/core/normalize"
)

// MarkdownRenderer renders a page as a small Markdown document.
type MarkdownRenderer struct {
	extractor  *extract.HTMLExtractor
	normalizer *normalize.MarkdownNormalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		extractor:  extract.New(),
		normalizer: normalize.New(),
	}
}

// Render builds "# Title", an optional italic description, the body and
// the source link.
func (r *MarkdownRenderer) Render(page *core.Page) ([]byte, error) {
	body, err := r.body(page)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(page.Title))
	if page.Meta.Description != "" {
		fmt.Fprintf(&b, "_%s_\n\n", escapeMarkdown(page.Meta.Description))
	}
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	if page.Meta.URL != "" {
		fmt.Fprintf(&b, "\nSource: <%s>\n", page.Meta.URL)
	}
	return []byte(b.String()), nil
}

// Name returns the format name.
func (r *MarkdownRenderer) Name() string {
	return "markdown"
}

func (r *MarkdownRenderer) body(page *core.Page) (string, error) {
	if page.Meta.ExtractHTML == "" {
		return escapeMarkdown(page.Extract), nil
	}

	cleaned, err := r.extractor.Extract(page.Meta.ExtractHTML)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	markdown, err := r.normalizer.Normalize(cleaned)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	if markdown == "" {
		return escapeMarkdown(page.Extract), nil
	}
	return markdown, nil
}

// markdownEscaper backslash-escapes inline emphasis, code and link syntax.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

// escapeMarkdown makes plain text safe to embed in Markdown.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
