package backup

import "github.com/nguyentantai21042004/voice-notes/internal/logger"

// Options configures a Writer.
type Options struct {
	Dir  string
	Docx bool
}

type implWriter struct {
	dir    string
	docx   bool
	logger logger.Logger
}

// New creates a Writer rooted at opts.Dir.
func New(opts Options, log logger.Logger) Writer {
	return &implWriter{
		dir:    opts.Dir,
		docx:   opts.Docx,
		logger: log,
	}
}
