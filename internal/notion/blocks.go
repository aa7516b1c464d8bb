package notion

import (
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/markdown"
)

type richText struct {
	Type        string       `json:"type"`
	Text        textContent  `json:"text"`
	Annotations *annotations `json:"annotations,omitempty"`
}

type textContent struct {
	Content string `json:"content"`
}

type annotations struct {
	Bold   bool `json:"bold"`
	Italic bool `json:"italic"`
}

type block map[string]any

// Languages Notion accepts for code blocks that models commonly emit.
var codeLanguages = map[string]string{
	"bash":       "bash",
	"c":          "c",
	"c++":        "c++",
	"cpp":        "c++",
	"css":        "css",
	"go":         "go",
	"html":       "html",
	"java":       "java",
	"javascript": "javascript",
	"js":         "javascript",
	"json":       "json",
	"markdown":   "markdown",
	"md":         "markdown",
	"python":     "python",
	"py":         "python",
	"rust":       "rust",
	"sh":         "shell",
	"shell":      "shell",
	"sql":        "sql",
	"typescript": "typescript",
	"ts":         "typescript",
	"yaml":       "yaml",
	"yml":        "yaml",
}

func toRichText(runs []markdown.Run) []richText {
	out := make([]richText, 0, len(runs))
	for _, r := range runs {
		rt := richText{Type: "text", Text: textContent{Content: r.Text}}
		if r.Bold || r.Italic {
			rt.Annotations = &annotations{Bold: r.Bold, Italic: r.Italic}
		}
		out = append(out, rt)
	}
	return out
}

// toBlock maps a converted block 1:1 onto Notion's block schema.
func toBlock(b markdown.Block) block {
	kind := string(b.Type)
	body := map[string]any{"rich_text": toRichText(b.Runs)}

	switch b.Type {
	case markdown.Heading:
		level := min(max(b.Level, 1), 3)
		kind = "heading_" + string(rune('0'+level))
	case markdown.Code:
		lang, ok := codeLanguages[strings.ToLower(b.Language)]
		if !ok {
			lang = "plain text"
		}
		body["language"] = lang
	}

	return block{
		"object": "block",
		"type":   kind,
		kind:     body,
	}
}

func toBlocks(blocks []markdown.Block) []block {
	out := make([]block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toBlock(b))
	}
	return out
}
