package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownNormalizer_Normalize(t *testing.T) {
	got, err := New().Normalize(`<p><b>Epictetus</b> was a Greek Stoic philosopher.</p>`)
	require.NoError(t, err)
	assert.Equal(t, "**Epictetus** was a Greek Stoic philosopher.", got)
}

func TestMarkdownNormalizer_Normalize_Empty(t *testing.T) {
	got, err := New().Normalize("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
