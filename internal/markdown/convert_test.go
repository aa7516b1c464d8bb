package markdown

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxBlock = 2000

func blockText(b Block) string { return b.PlainText() }

func TestConvertStructure(t *testing.T) {
	got := Convert("# Title\n\n- a\n- b\n\n1. x\n2. y", testMaxBlock)

	require.Len(t, got, 5)
	assert.Equal(t, Heading, got[0].Type)
	assert.Equal(t, 1, got[0].Level)
	assert.Equal(t, "Title", blockText(got[0]))

	for i, want := range []string{"a", "b"} {
		assert.Equal(t, Bulleted, got[1+i].Type)
		assert.Equal(t, want, blockText(got[1+i]))
	}
	for i, want := range []string{"x", "y"} {
		assert.Equal(t, Numbered, got[3+i].Type)
		assert.Equal(t, want, blockText(got[3+i]))
	}
}

func TestConvertBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "heading levels capped at three",
			input: "## Two\n#### Four",
			want: []Block{
				{Type: Heading, Level: 2, Runs: []Run{{Text: "Two"}}},
				{Type: Heading, Level: 3, Runs: []Run{{Text: "Four"}}},
			},
		},
		{
			name:  "all bullet markers",
			input: "- one\n* two\n+ three",
			want: []Block{
				{Type: Bulleted, Runs: []Run{{Text: "one"}}},
				{Type: Bulleted, Runs: []Run{{Text: "two"}}},
				{Type: Bulleted, Runs: []Run{{Text: "three"}}},
			},
		},
		{
			name:  "code fence keeps raw lines",
			input: "```go\n  x := 1\n\n# not a heading\n```\nafter",
			want: []Block{
				{Type: Code, Language: "go", Runs: []Run{{Text: "  x := 1\n\n# not a heading"}}},
				{Type: Paragraph, Runs: []Run{{Text: "after"}}},
			},
		},
		{
			name:  "quote lines are space joined",
			input: "> first\n> second\nplain",
			want: []Block{
				{Type: Quote, Runs: []Run{{Text: "first second"}}},
				{Type: Paragraph, Runs: []Run{{Text: "plain"}}},
			},
		},
		{
			name:  "paragraph accumulates until another construct",
			input: "line one\nline two\n- item",
			want: []Block{
				{Type: Paragraph, Runs: []Run{{Text: "line one\nline two"}}},
				{Type: Bulleted, Runs: []Run{{Text: "item"}}},
			},
		},
		{
			name:  "horizontal rule dropped",
			input: "above\n\n---\n\nbelow",
			want: []Block{
				{Type: Paragraph, Runs: []Run{{Text: "above"}}},
				{Type: Paragraph, Runs: []Run{{Text: "below"}}},
			},
		},
		{
			name:  "bold paragraph is not a bullet",
			input: "**Decision:** ship it",
			want: []Block{
				{Type: Paragraph, Runs: []Run{{Text: "Decision:", Bold: true}, {Text: " ship it"}}},
			},
		},
		{
			name:  "empty input",
			input: "\n\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input, testMaxBlock))
		})
	}
}

func TestConvertBulletNeedsSpace(t *testing.T) {
	got := Convert("-dash item\n*lead* words", testMaxBlock)

	require.Len(t, got, 1)
	assert.Equal(t, Paragraph, got[0].Type)
	assert.Equal(t, "-dash item\nlead words", blockText(got[0]))
}

func TestConvertBoldHasNoAsterisks(t *testing.T) {
	got := Convert("We agreed on **bold** moves.", testMaxBlock)
	require.Len(t, got, 1)

	var found bool
	for _, r := range got[0].Runs {
		if r.Bold {
			found = true
			assert.Equal(t, "bold", r.Text)
		}
		assert.NotContains(t, r.Text, "*")
	}
	assert.True(t, found)
}

func TestConvertSplitsLongParagraph(t *testing.T) {
	const limit = 50
	para := strings.Repeat("abcdefghij", 3*limit/10)

	got := Convert(para, limit)
	require.Len(t, got, 3)

	var joined strings.Builder
	for _, b := range got {
		assert.Equal(t, Paragraph, b.Type)
		assert.LessOrEqual(t, utf8.RuneCountInString(blockText(b)), limit)
		joined.WriteString(blockText(b))
	}
	assert.Equal(t, para, joined.String())
}

func TestConvertSplitRespectsMultibyte(t *testing.T) {
	para := strings.Repeat("é", 25)

	got := Convert(para, 10)
	require.Len(t, got, 3)
	for _, b := range got {
		assert.True(t, utf8.ValidString(blockText(b)))
	}
	assert.Equal(t, "éééééééééé", blockText(got[0]))
	assert.Equal(t, "ééééé", blockText(got[2]))
}

func TestConvertLongListItemSplitsRuns(t *testing.T) {
	item := strings.Repeat("x", 25)

	got := Convert("- "+item, 10)
	require.Len(t, got, 1)
	require.Len(t, got[0].Runs, 3)
	for _, r := range got[0].Runs {
		assert.LessOrEqual(t, len(r.Text), 10)
	}
	assert.Equal(t, item, blockText(got[0]))
}
