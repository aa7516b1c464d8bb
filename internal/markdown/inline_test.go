package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Run
	}{
		{
			name: "plain",
			in:   "nothing special",
			want: []Run{{Text: "nothing special"}},
		},
		{
			name: "double asterisk bold",
			in:   "a **b** c",
			want: []Run{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}},
		},
		{
			name: "double underscore bold",
			in:   "__b__",
			want: []Run{{Text: "b", Bold: true}},
		},
		{
			name: "asterisk italic",
			in:   "an *aside* here",
			want: []Run{{Text: "an "}, {Text: "aside", Italic: true}, {Text: " here"}},
		},
		{
			name: "underscore italic",
			in:   "_soft_ text",
			want: []Run{{Text: "soft", Italic: true}, {Text: " text"}},
		},
		{
			name: "bold and italic side by side",
			in:   "**B** and *i*",
			want: []Run{{Text: "B", Bold: true}, {Text: " and "}, {Text: "i", Italic: true}},
		},
		{
			name: "unmatched bold stays literal",
			in:   "price **high",
			want: []Run{{Text: "price **high"}},
		},
		{
			name: "arithmetic asterisks stay literal",
			in:   "2 * 3 * 4",
			want: []Run{{Text: "2 * 3 * 4"}},
		},
		{
			name: "snake case stays literal",
			in:   "call load_queue_file now",
			want: []Run{{Text: "call load_queue_file now"}},
		},
		{
			name: "empty",
			in:   "",
			want: []Run{{Text: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInline(tt.in))
		})
	}
}
