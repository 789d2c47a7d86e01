package inputstring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func (m trimMode) apply(s string) string {
	switch m {
	case trimBoth:
		return strings.TrimSpace(s)
	case trimLeading:
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	case trimTrailing:
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return s
}

// truncateRunes cuts s to its first n characters. Counting is by code point,
// not by byte.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func upperWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true
	for _, r := range s {
		if prevSpace {
			r = unicode.ToUpper(r)
		}
		prevSpace = unicode.IsSpace(r)
		b.WriteRune(r)
	}
	return b.String()
}

func upperSentences(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	// pending marks that the next letter starts a sentence. Whitespace after
	// a terminator keeps it pending; any other character consumes it.
	pending := true
	for _, r := range s {
		switch {
		case r == '.':
			pending = true
		case unicode.IsSpace(r):
		case pending:
			r = unicode.ToUpper(r)
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
