package backup

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/voice-notes/internal/markdown"
)

const (
	fontName = "Times New Roman"
	codeFont = "Courier New"
	fontSize = 13
)

// blocksToDocx renders converted blocks to a styled docx file.
func blocksToDocx(title string, blocks []markdown.Block, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, fontName, 16, true, false)

	number := 0
	for _, b := range blocks {
		if b.Type != markdown.Numbered {
			number = 0
		}

		p := doc.AddParagraph("")
		switch b.Type {
		case markdown.Heading:
			addStyledRun(p, b.PlainText(), fontName, headingSize(b.Level), true, false)
		case markdown.Bulleted:
			addStyledRun(p, "• ", fontName, fontSize, false, false)
			addRuns(p, b.Runs, false)
		case markdown.Numbered:
			number++
			addStyledRun(p, fmt.Sprintf("%d. ", number), fontName, fontSize, false, false)
			addRuns(p, b.Runs, false)
		case markdown.Quote:
			addRuns(p, b.Runs, true)
		case markdown.Code:
			addStyledRun(p, b.PlainText(), codeFont, fontSize-2, false, false)
		default:
			addRuns(p, b.Runs, false)
		}
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text, font string, size uint64, bold, italic bool) {
	run := p.AddText(text).Font(font).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
	if italic {
		run.Italic(true)
	}
}

func addRuns(p *docx.Paragraph, runs []markdown.Run, italic bool) {
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		addStyledRun(p, r.Text, fontName, fontSize, r.Bold, r.Italic || italic)
	}
}
