package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "greedy", text: "aaa bbb ccc", width: 7, want: "aaa bbb\nccc"},
		{name: "collapses whitespace", text: "a  \n\t b", width: 10, want: "a b"},
		{name: "empty", text: "", width: 10, want: ""},
		{name: "long word alone", text: "abcdefghij", width: 4, want: "abcd\nefgh\nij"},
		{name: "long word after short", text: "ab cdefghij", width: 5, want: "ab cd\nefghi\nj"},
		{name: "runes not bytes", text: "ääää ööö", width: 4, want: "ääää\nööö"},
		{name: "disabled", text: "keep   as is", width: 0, want: "keep   as is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fill(tt.text, tt.width))
		})
	}
}

func TestFill_LinesNeverExceedWidth(t *testing.T) {
	text := strings.Repeat("Epictetus was a Greek Stoic philosopher. ", 20)
	for _, line := range strings.Split(Fill(text, 70), "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 70)
	}
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "\x1b[32mEpictetus\x1b[0m", Highlight("Epictetus", true))
	assert.Equal(t, "Epictetus", Highlight("Epictetus", false))
	assert.Equal(t, "", Highlight("", true))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Write([]byte("hello\n")))
	assert.Equal(t, "hello\n", buf.String())

	err := New(failingWriter{}).Write([]byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing output: broken pipe")
}

func TestIsTerminal(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	defer devNull.Close()

	regular, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer regular.Close()

	tests := []struct {
		name string
		w    io.Writer
	}{
		{name: "buffer", w: &bytes.Buffer{}},
		{name: "character device that is not a tty", w: devNull},
		{name: "regular file", w: regular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsTerminal(tt.w))
			assert.False(t, ColorEnabled(tt.w, false), "no color outside a terminal")
		})
	}
}

func TestColorEnabled_FlagWins(t *testing.T) {
	assert.False(t, ColorEnabled(os.Stdout, true))
}
