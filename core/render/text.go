// Package render provides the output renderers for a fetched page.
// This file implements the plain-text renderer used for the terminal.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/wikiroulette/core"
	"github.com/gaurav-prasanna/wikiroulette/core/output"
)

// DefaultWidth is the wrap column for the text renderer.
const DefaultWidth = 70

// TextRenderer prints the title on its own line followed by the wrapped extract.
type TextRenderer struct {
	Width int  // wrap column; <= 0 disables wrapping
	Color bool // highlight the title
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(width int, color bool) *TextRenderer {
	return &TextRenderer{Width: width, Color: color}
}

// Render returns the title line and the extract, each newline-terminated.
func (r *TextRenderer) Render(page *core.Page) ([]byte, error) {
	var b strings.Builder
	b.WriteString(output.Highlight(page.Title, r.Color))
	b.WriteByte('\n')
	b.WriteString(output.Fill(page.Extract, r.Width))
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// Name returns the format name.
func (r *TextRenderer) Name() string {
	return "text"
}
