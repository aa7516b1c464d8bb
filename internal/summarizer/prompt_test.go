package summarizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompt(t *testing.T) {
	dir := t.TempDir()
	scripts := filepath.Join(dir, "processing_prompt.md")
	configured := filepath.Join(dir, "post_processing_prompt.txt")
	require.NoError(t, os.WriteFile(configured, []byte("Summarize for {COMPANY_NAME} ({COMPANY_SHORTHAND})."), 0644))

	tests := []struct {
		name  string
		setup func()
		files []string
		want  string
	}{
		{
			name:  "no files uses built-in prompt",
			files: nil,
			want:  defaultPrompt,
		},
		{
			name:  "missing files fall through to built-in",
			files: []string{filepath.Join(dir, "nope.md"), ""},
			want:  defaultPrompt,
		},
		{
			name:  "configured file with placeholders",
			files: []string{scripts, configured},
			want:  "Summarize for Acme Corporation (ACME).",
		},
		{
			name: "first readable file wins",
			setup: func() {
				require.NoError(t, os.WriteFile(scripts, []byte("Scripts prompt for {COMPANY_SHORTHAND}"), 0644))
			},
			files: []string{scripts, configured},
			want:  "Scripts prompt for ACME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			got := LoadPrompt(PromptOptions{
				Files:            tt.files,
				CompanyName:      "Acme Corporation",
				CompanyShorthand: "ACME",
			})
			assert.Equal(t, tt.want, got)
		})
	}
}
