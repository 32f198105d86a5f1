// Package core defines the shared types and pipeline interfaces for wikiroulette.
// A run is a single pass: fetch → render → write.
package core

import "context"

// Page is a validated random article summary.
// It is built fresh for every fetch and never mutated afterwards.
type Page struct {
	Title   string
	Extract string
	Meta    PageMetadata
}

// PageMetadata holds optional summary fields. They are filled best-effort
// and left empty when the response omits them or gives them the wrong type.
type PageMetadata struct {
	Description string
	ExtractHTML string
	Language    string
	URL         string // desktop page URL
}

// PageJSON is the JSON output for a single page.
type PageJSON struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	URL         string `json:"url,omitempty"`
}

// PageFetcher retrieves a random page summary for a language edition.
type PageFetcher interface {
	Fetch(ctx context.Context, language string) (*Page, error)
}

// Renderer converts a page into a final output format.
type Renderer interface {
	Render(page *Page) ([]byte, error)
	// Name returns the format name used on the command line (e.g. "text", "pdf").
	Name() string
}
