package audio

import (
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// Options configures the chunker.
type Options struct {
	Dir           string
	Bitrate       string
	MaxChunkBytes int64
	FFmpegPath    string
	FFprobePath   string
}

type implChunker struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Chunker that shells out to ffprobe and ffmpeg.
func New(opts Options, exec executor.Executor, log logger.Logger) Chunker {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.FFprobePath == "" {
		opts.FFprobePath = "ffprobe"
	}
	return &implChunker{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
