package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSummary(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{name: "english", language: "en", want: "https://en.wikipedia.org/api/rest_v1/page/random/summary"},
		{name: "german", language: "de", want: "https://de.wikipedia.org/api/rest_v1/page/random/summary"},
		{name: "empty", language: "", want: "https://.wikipedia.org/api/rest_v1/page/random/summary"},
		{name: "iso 639-3", language: "nds", want: "https://nds.wikipedia.org/api/rest_v1/page/random/summary"},
		{name: "unusual characters kept literally", language: "a b/ü?%", want: "https://a b/ü?%.wikipedia.org/api/rest_v1/page/random/summary"},
		{name: "placeholder in input is not expanded", language: "{language}", want: "https://{language}.wikipedia.org/api/rest_v1/page/random/summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RandomSummary(tt.language))
		})
	}
}

func TestRandomSummary_IsPure(t *testing.T) {
	assert.Equal(t, RandomSummary("fr"), RandomSummary("fr"))
	assert.Contains(t, RandomSummary("de"), "de.wikipedia.org")
}
