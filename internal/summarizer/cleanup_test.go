package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no preamble",
			in:   "# Weekly Sync\n\n- Ship it",
			want: "# Weekly Sync\n\n- Ship it",
		},
		{
			name: "of course here are the meeting minutes",
			in:   "Of course. Here are the meeting minutes for today:\n\n# Weekly Sync",
			want: "# Weekly Sync",
		},
		{
			name: "based on the transcript",
			in:   "Based on the provided transcript, this is the summary.\n# Title",
			want: "# Title",
		},
		{
			name: "certainly here's a summary",
			in:   "Certainly! Here's a structured summary:\n\n## Points",
			want: "## Points",
		},
		{
			name: "stacked preambles",
			in:   "Sure, let me summarize that.\nHere is the meeting minutes.\n# Body",
			want: "# Body",
		},
		{
			name: "case insensitive",
			in:   "HERE ARE THE MEETING MINUTES\nbody",
			want: "body",
		},
		{
			name: "phrase later in text is kept",
			in:   "# Title\nHere are the meeting minutes from last week.",
			want: "# Title\nHere are the meeting minutes from last week.",
		},
		{
			name: "only preamble",
			in:   "Here is the meeting minutes",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResponse(tt.in))
		})
	}
}
