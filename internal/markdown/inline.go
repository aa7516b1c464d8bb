package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseInline splits text into runs on **bold**, __bold__, *italic* and
// _italic_ spans. Spans do not nest; a delimiter without a partner is kept
// as literal text.
func parseInline(text string) []Run {
	var (
		runs  []Run
		plain strings.Builder
	)
	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, Run{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if d := delimiterAt(text, i); d != "" {
			if inner, ok := closeSpan(text, i, d); ok {
				flush()
				runs = append(runs, Run{Text: inner, Bold: len(d) == 2, Italic: len(d) == 1})
				i += len(inner) + 2*len(d)
				continue
			}
			// Skip the whole delimiter so "**" is not retried as two "*".
			plain.WriteString(d)
			i += len(d)
			continue
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()

	if len(runs) == 0 {
		return []Run{{Text: ""}}
	}
	return runs
}

func delimiterAt(s string, i int) string {
	switch {
	case strings.HasPrefix(s[i:], "**"):
		return "**"
	case strings.HasPrefix(s[i:], "__"):
		return "__"
	case s[i] == '*':
		return "*"
	case s[i] == '_':
		return "_"
	}
	return ""
}

// closeSpan finds the partner of delimiter d opening at i and returns the
// enclosed text.
func closeSpan(s string, i int, d string) (string, bool) {
	start := i + len(d)
	if d[0] == '_' && isWordBefore(s, i) {
		return "", false
	}

	end := strings.Index(s[start:], d)
	if end <= 0 {
		return "", false
	}
	inner := s[start : start+end]
	if strings.TrimSpace(inner) != inner {
		return "", false
	}
	if len(d) == 1 && strings.HasPrefix(s[start+end:], d+d) {
		return "", false
	}
	if d[0] == '_' && isWordAfter(s, start+end+len(d)) {
		return "", false
	}
	return inner, true
}

func isWordBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWordAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
