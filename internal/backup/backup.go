// Package backup writes the local markdown (and optional .docx) copy of each
// processed note.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

const (
	fileStamp    = "20060102_150405"
	displayStamp = "2006-01-02 15:04:05"
)

func (w *implWriter) Write(ctx context.Context, note Note) (*Files, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create backup dir: %w", errs.ErrResource, err)
	}

	at := note.ProcessedAt
	if at.IsZero() {
		at = time.Now()
	}

	base := at.Format(fileStamp) + "_" + SafeTitle(note.Title)
	mdPath := filepath.Join(w.dir, base+".md")

	if err := os.WriteFile(mdPath, []byte(Render(note, at)), 0644); err != nil {
		return nil, fmt.Errorf("%w: write backup: %w", errs.ErrResource, err)
	}
	w.logger.Info(ctx, "Backup saved: %s", filepath.Base(mdPath))

	files := &Files{Markdown: mdPath}
	if !w.docx {
		return files, nil
	}

	docxPath := filepath.Join(w.dir, base+".docx")
	if err := blocksToDocx(note.Title, note.Blocks, docxPath); err != nil {
		// The markdown copy is enough to count as backed up.
		w.logger.Warn(ctx, "Failed to write docx backup: %v", err)
		return files, nil
	}
	files.Docx = docxPath
	w.logger.Info(ctx, "Docx saved: %s", filepath.Base(docxPath))
	return files, nil
}

// Render builds the backup file body.
func Render(note Note, at time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", note.Title)
	fmt.Fprintf(&sb, "**Original File:** %s\n", note.OriginalFile)
	fmt.Fprintf(&sb, "**Processed:** %s\n\n", at.Format(displayStamp))
	sb.WriteString("---\n\n")
	sb.WriteString(note.Body)
	return sb.String()
}

// SafeTitle keeps letters, digits, spaces, dashes and underscores and trims
// trailing space.
func SafeTitle(title string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			return r
		}
		return -1
	}, title)
	safe = strings.TrimRight(safe, " ")
	if safe == "" {
		return "note"
	}
	return safe
}
