package summarizer

import (
	"os"
	"strings"
)

const defaultPrompt = "Act as an expert meeting assistant. " +
	"Create a structured summary of voice note transcripts. " +
	"Include a title, key discussion points, and any action items mentioned. " +
	"Format the response in a clear, professional manner suitable for Notion."

// PromptOptions says where the instruction template lives and what to
// substitute into it.
type PromptOptions struct {
	// Files are tried in order; the first readable one wins.
	Files            []string
	CompanyName      string
	CompanyShorthand string
}

// LoadPrompt reads the instruction template and fills the company
// placeholders. A missing file falls back to the built-in prompt.
func LoadPrompt(opts PromptOptions) string {
	text := defaultPrompt
	for _, f := range opts.Files {
		if f == "" {
			continue
		}
		data, err := os.ReadFile(f)
		if err != nil {
			continue
		}
		text = string(data)
		break
	}

	r := strings.NewReplacer(
		"{COMPANY_NAME}", opts.CompanyName,
		"{COMPANY_SHORTHAND}", opts.CompanyShorthand,
	)
	return r.Replace(text)
}
