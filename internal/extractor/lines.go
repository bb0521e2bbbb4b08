package extractor

import (
	"strings"
	"unicode/utf8"
)

// splitLines breaks a page's raw text into cleaned, non-empty lines in
// the order the parser emitted them.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := cleanLine(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// cleanLine strips control characters and undecodable runes from a
// single line, then trims surrounding whitespace. PDF parsers routinely
// emit NULL bytes and stray control sequences that would corrupt the
// JSON response.
func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7F || r == utf8.RuneError {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
