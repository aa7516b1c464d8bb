package source

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const (
	defaultTimeout    = 10 * time.Minute
	defaultMaxElapsed = 30 * time.Second
)

// Options configures a Resolver.
type Options struct {
	DownloadDir string
	HTTPClient  *http.Client
	// MaxElapsed bounds download retries.
	MaxElapsed time.Duration
}

type implResolver struct {
	dir        string
	client     *http.Client
	maxElapsed time.Duration
	logger     logger.Logger
}

// New creates a Resolver that downloads URLs into opts.DownloadDir.
func New(opts Options, log logger.Logger) Resolver {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	maxElapsed := opts.MaxElapsed
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsed
	}
	return &implResolver{
		dir:        opts.DownloadDir,
		client:     client,
		maxElapsed: maxElapsed,
		logger:     log,
	}
}
