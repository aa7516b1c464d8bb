package markdown

import (
	"regexp"
	"strings"
)

const maxHeadingLevel = 3

var (
	reHeading = regexp.MustCompile(`^(#+)\s*(.*)$`)
	reNumber  = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	reRule    = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
)

// Convert parses markdown into blocks. No run in the result is longer than
// maxBlock characters; a non-positive maxBlock disables the limit.
func Convert(md string, maxBlock int) []Block {
	lines := strings.Split(strings.ReplaceAll(md, "\r\n", "\n"), "\n")

	var blocks []Block
	for i := 0; i < len(lines); {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case trimmed == "":
			i++

		case strings.HasPrefix(trimmed, "```"):
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			i++
			var body []string
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
				body = append(body, lines[i])
				i++
			}
			i++ // closing fence
			blocks = append(blocks, Block{
				Type:     Code,
				Runs:     limitRuns([]Run{{Text: strings.Join(body, "\n")}}, maxBlock),
				Language: lang,
			})

		case strings.HasPrefix(trimmed, "#"):
			m := reHeading.FindStringSubmatch(trimmed)
			blocks = append(blocks, Block{
				Type:  Heading,
				Level: min(len(m[1]), maxHeadingLevel),
				Runs:  limitRuns(parseInline(strings.TrimSpace(m[2])), maxBlock),
			})
			i++

		case reRule.MatchString(trimmed):
			i++

		case isBullet(trimmed):
			for i < len(lines) && isBullet(strings.TrimSpace(lines[i])) {
				text := strings.TrimSpace(strings.TrimSpace(lines[i])[1:])
				blocks = append(blocks, Block{Type: Bulleted, Runs: limitRuns(parseInline(text), maxBlock)})
				i++
			}

		case reNumber.MatchString(trimmed):
			for i < len(lines) {
				m := reNumber.FindStringSubmatch(strings.TrimSpace(lines[i]))
				if m == nil {
					break
				}
				blocks = append(blocks, Block{Type: Numbered, Runs: limitRuns(parseInline(m[1]), maxBlock)})
				i++
			}

		case strings.HasPrefix(trimmed, ">"):
			var parts []string
			for i < len(lines) {
				t := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(t, ">") {
					break
				}
				if p := strings.TrimSpace(strings.TrimPrefix(t, ">")); p != "" {
					parts = append(parts, p)
				}
				i++
			}
			blocks = append(blocks, Block{Type: Quote, Runs: limitRuns(parseInline(strings.Join(parts, " ")), maxBlock)})

		default:
			var parts []string
			for i < len(lines) {
				t := strings.TrimSpace(lines[i])
				if t == "" || (len(parts) > 0 && startsConstruct(t)) {
					break
				}
				parts = append(parts, t)
				i++
			}
			for _, piece := range splitRunes(strings.Join(parts, "\n"), maxBlock) {
				blocks = append(blocks, Block{Type: Paragraph, Runs: parseInline(piece)})
			}
		}
	}

	return blocks
}

func isBullet(line string) bool {
	if reRule.MatchString(line) {
		return false
	}
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "+ ") ||
		line == "-" || line == "*" || line == "+"
}

// startsConstruct reports whether a line would open something other than
// a paragraph continuation.
func startsConstruct(line string) bool {
	return strings.HasPrefix(line, "```") ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, ">") ||
		reRule.MatchString(line) ||
		isBullet(line) ||
		reNumber.MatchString(line)
}

// splitRunes cuts s into pieces of at most n characters, never inside a
// multi-byte character.
func splitRunes(s string, n int) []string {
	if n <= 0 {
		return []string{s}
	}
	r := []rune(s)
	if len(r) <= n {
		return []string{s}
	}
	var out []string
	for len(r) > 0 {
		k := min(n, len(r))
		out = append(out, string(r[:k]))
		r = r[k:]
	}
	return out
}

func limitRuns(runs []Run, n int) []Run {
	if n <= 0 {
		return runs
	}
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		for _, piece := range splitRunes(r.Text, n) {
			out = append(out, Run{Text: piece, Bold: r.Bold, Italic: r.Italic})
		}
	}
	return out
}
