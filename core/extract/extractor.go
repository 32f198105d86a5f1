// Package extract cleans the HTML rendition of a summary (extract_html)
// before it is converted to Markdown. Wikipedia fragments can carry
// reference markers, inline styles and edit links that add no text.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed from the fragment before conversion.
var noiseSelectors = []string{
	"script", "style", "link", "noscript",
	"sup.reference", "span.mw-ref", ".mw-editsection", ".noprint",
	"img", "figure", "audio", "video",
	"annotation",
}

// HTMLExtractor strips noise from a summary HTML fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract returns the cleaned fragment. Blank input yields "".
func (e *HTMLExtractor) Extract(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// The parser wraps fragments in <html><body>.
	result, err := doc.Find("body").First().Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return strings.TrimSpace(result), nil
}
