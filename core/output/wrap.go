package output

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Highlight renders s in green when enabled. The caller decides; the
// global color.NoColor is not consulted here.
func Highlight(s string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	c := color.New(color.FgGreen)
	c.EnableColor()
	return c.Sprint(s)
}

// Fill reflows text into lines of at most width runes, splitting on
// whitespace. Words longer than width are broken. width <= 0 returns
// the text unchanged.
func Fill(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineLen = 0
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			if lineLen > 0 {
				// Fill what is left of the current line first.
				room := width - lineLen - 1
				if room <= 0 {
					flush()
					continue
				}
				head, tail := splitRunes(word, room)
				line.WriteByte(' ')
				line.WriteString(head)
				flush()
				word = tail
				continue
			}
			head, tail := splitRunes(word, width)
			line.WriteString(head)
			flush()
			word = tail
		}
		if word == "" {
			continue
		}

		n := utf8.RuneCountInString(word)
		switch {
		case lineLen == 0:
		case lineLen+1+n <= width:
			line.WriteByte(' ')
			lineLen++
		default:
			flush()
		}
		line.WriteString(word)
		lineLen += n
	}
	if lineLen > 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}

// splitRunes splits s after n runes.
func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
