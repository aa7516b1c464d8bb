package summarizer

import (
	"regexp"
	"strings"
)

// Chatty openers models put in front of the summary. Only matched at the
// very start of the response.
var preamblePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:Of course[.,!]?\s*)?Here (?:are|is) the meeting minutes?.*?(?:\n|$)`),
	regexp.MustCompile(`(?i)^Based on the (?:provided )?transcript.*?(?:\n|$)`),
	regexp.MustCompile(`(?i)^I'll (?:create|provide|generate).*?meeting minutes?.*?(?:\n|$)`),
	regexp.MustCompile(`(?i)^(?:Certainly[.,!]?\s*)?(?:Here's|Here are|Here is).*?(?:summary|minutes?).*?(?:\n|$)`),
	regexp.MustCompile(`(?i)^(?:Sure[.,!]?\s*)?(?:I'll|Let me).*?(?:summarize|create).*?(?:\n|$)`),
	regexp.MustCompile(`(?i)^(?:Absolutely[.,!]?\s*)?(?:Here's|Here are) (?:a |the )?(?:clean |structured )?(?:meeting )?(?:summary|minutes?).*?(?:\n|$)`),
}

// CleanResponse strips conversational preamble from the start of a model
// response.
func CleanResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	for {
		before := cleaned
		for _, re := range preamblePatterns {
			if loc := re.FindStringIndex(cleaned); loc != nil {
				cleaned = strings.TrimSpace(cleaned[loc[1]:])
			}
		}
		if cleaned == before {
			return cleaned
		}
	}
}
