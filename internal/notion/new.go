package notion

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	defaultVersion = "2022-06-28"
)

// Options configures the Notion client.
type Options struct {
	BaseURL       string
	Version       string
	APIKey        string
	DatabaseID    string
	TitleProperty string
	DateProperty  string
	Timeout       time.Duration
	// RateLimit is requests per second; Notion allows about three.
	RateLimit float64
	// MaxElapsed bounds retries of one request.
	MaxElapsed time.Duration
}

type implPublisher struct {
	opts    Options
	client  *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

// New creates a Publisher.
func New(opts Options, log logger.Logger) Publisher {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Version == "" {
		opts.Version = defaultVersion
	}
	if opts.TitleProperty == "" {
		opts.TitleProperty = "Title"
	}
	if opts.DateProperty == "" {
		opts.DateProperty = "Meeting Date"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 3
	}
	if opts.MaxElapsed <= 0 {
		opts.MaxElapsed = 30 * time.Second
	}

	return &implPublisher{
		opts:    opts,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		logger:  log,
	}
}
