// Package render — JSON renderer.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/wikiroulette/core"
)

// JSONRenderer produces indented JSON for a page.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the page with its optional metadata.
func (r *JSONRenderer) Render(page *core.Page) ([]byte, error) {
	out := core.PageJSON{
		Title:       page.Title,
		Extract:     page.Extract,
		Description: page.Meta.Description,
		Language:    page.Meta.Language,
		URL:         page.Meta.URL,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Name returns the format name.
func (r *JSONRenderer) Name() string {
	return "json"
}
