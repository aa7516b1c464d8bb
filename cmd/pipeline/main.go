package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/errs"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/queue"
	"github.com/nguyentantai21042004/voice-notes/internal/source"
	"github.com/nguyentantai21042004/voice-notes/internal/watcher"
)

type options struct {
	configPath   string
	queueOnly    bool
	processQueue bool
	processNext  bool
	showQueue    bool
	clearQueue   bool
	watch        bool
	latest       bool
	yes          bool
	items        []string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.yaml", "Path to config file")
	flag.BoolVar(&opts.queueOnly, "queue-only", false, "Add the given items to the queue without processing")
	flag.BoolVar(&opts.processQueue, "process-queue", false, "Process every item in the queue")
	flag.BoolVar(&opts.processNext, "process-next", false, "Process the next item in the queue")
	flag.BoolVar(&opts.showQueue, "show-queue", false, "Show the queue and exit")
	flag.BoolVar(&opts.clearQueue, "clear-queue", false, "Clear the queue and exit")
	flag.BoolVar(&opts.watch, "watch", false, "Watch the voice notes folder and process new recordings")
	flag.BoolVar(&opts.latest, "latest", false, "Process the newest unprocessed recording in the voice notes folder")
	flag.BoolVar(&opts.yes, "yes", false, "Answer yes to prompts (drop failed items from the queue)")
	flag.Parse()
	opts.items = flag.Args()

	if err := run(opts); err != nil {
		color.Red("Error: %v", err)
		if errors.Is(err, errs.ErrConfiguration) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := config.LoadEnv(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	q := queue.NewQueue(cfg.Paths.QueueFile, log)
	ledger := queue.NewLedger(cfg.Paths.LedgerFile)

	mode := selectMode(opts)
	switch mode {
	case modeShow:
		return showQueue(q)
	case modeClear:
		if err := q.Clear(ctx); err != nil {
			return err
		}
		color.Green("Queue cleared")
		return nil
	case modeUsage:
		flag.Usage()
		return showQueue(q)
	}

	items := uniqueItems(unquoteAll(opts.items))
	if len(items) > 0 {
		results, err := q.Add(ctx, items...)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Duplicate {
				color.Yellow("Already in queue: %s", r.Item)
			} else {
				color.Cyan("Added to queue: %s", r.Item)
			}
		}
	}
	if mode == modeEnqueue {
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := source.WipeDownloads(cfg.Paths.DownloadDir); err != nil {
		log.Warn(ctx, "%v", err)
	}

	switch mode {
	case modeLatest:
		return runLatest(ctx, cfg, q, ledger, log, opts.yes)
	case modeWatch:
		return runWatch(ctx, cfg, q, ledger, log)
	case modeItems:
		return runItems(ctx, cfg, q, ledger, log, items, opts.yes)
	case modeNext:
		return runNext(ctx, cfg, q, ledger, log, opts.yes)
	default:
		return runQueue(ctx, cfg, q, ledger, log, opts.yes)
	}
}

type mode int

const (
	modeUsage mode = iota
	modeShow
	modeClear
	modeEnqueue
	modeItems
	modeNext
	modeQueue
	modeLatest
	modeWatch
)

// selectMode maps flags to one run mode. Positional items are processed
// on their own unless -queue-only is set.
func selectMode(opts options) mode {
	switch {
	case opts.showQueue:
		return modeShow
	case opts.clearQueue:
		return modeClear
	case len(opts.items) > 0 && opts.queueOnly:
		return modeEnqueue
	case len(opts.items) > 0:
		return modeItems
	case opts.latest:
		return modeLatest
	case opts.watch:
		return modeWatch
	case opts.processNext:
		return modeNext
	case opts.processQueue:
		return modeQueue
	default:
		return modeUsage
	}
}

// loadConfig reads the YAML file when present and falls back to defaults
// plus environment otherwise.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}
	return cfg, nil
}

func showQueue(q queue.Queue) error {
	items, err := q.Load()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		color.Cyan("Queue is empty")
		return nil
	}
	color.Cyan("Current queue (%d items):", len(items))
	for i, item := range items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
	return nil
}

func runQueue(ctx context.Context, cfg *config.Config, q queue.Queue, ledger queue.Ledger, log logger.Logger, yes bool) error {
	items, err := q.Load()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		color.Cyan("Queue is empty")
		return nil
	}

	bar := getProgressBar(len(items), "Processing queue")
	proc := newProcessor(cfg, q, ledger, log, processor.WithItemDone(func(res processor.Result) {
		_ = bar.Add(1)
	}))

	batch, err := proc.ProcessAll(ctx, decider(yes))
	_ = bar.Finish()
	fmt.Println()

	for _, res := range batch.Results {
		report(res)
	}
	color.Blue("Results: %d/%d items processed successfully", batch.Succeeded, batch.Total)
	return err
}

func runItems(ctx context.Context, cfg *config.Config, q queue.Queue, ledger queue.Ledger, log logger.Logger, items []string, yes bool) error {
	bar := getProgressBar(len(items), "Processing files")
	proc := newProcessor(cfg, q, ledger, log, processor.WithItemDone(func(res processor.Result) {
		_ = bar.Add(1)
	}))

	batch, err := proc.ProcessItems(ctx, items, decider(yes))
	_ = bar.Finish()
	fmt.Println()

	for _, res := range batch.Results {
		report(res)
	}
	color.Blue("Results: %d/%d items processed successfully", batch.Succeeded, batch.Total)
	return err
}

func runNext(ctx context.Context, cfg *config.Config, q queue.Queue, ledger queue.Ledger, log logger.Logger, yes bool) error {
	res, ok, err := newProcessor(cfg, q, ledger, log).ProcessNext(ctx, decider(yes))
	if !ok && err == nil {
		color.Cyan("Queue is empty")
		return nil
	}
	if ok {
		report(res)
	}
	return err
}

func runLatest(ctx context.Context, cfg *config.Config, q queue.Queue, ledger queue.Ledger, log logger.Logger, yes bool) error {
	if cfg.Paths.VoiceNotes == "" {
		return fmt.Errorf("%w: voice notes folder is not configured", errs.ErrConfiguration)
	}

	latest, ok, err := watcher.Latest(cfg.Paths.VoiceNotes, newFilter(cfg), ledger)
	if err != nil {
		return err
	}
	if !ok {
		color.Yellow("No unprocessed files found in voice notes folder")
		return nil
	}

	color.Cyan("Latest file: %s", filepath.Base(latest))
	if !yes && !confirm("Process this file?") {
		fmt.Println("Skipped")
		return nil
	}

	res := newProcessor(cfg, q, ledger, log).Process(ctx, latest)
	report(res)
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, q queue.Queue, ledger queue.Ledger, log logger.Logger) error {
	if cfg.Paths.VoiceNotes == "" {
		return fmt.Errorf("%w: voice notes folder is not configured", errs.ErrConfiguration)
	}

	proc := newProcessor(cfg, q, ledger, log)
	handler := func(ctx context.Context, path string) error {
		if _, err := q.Add(ctx, path); err != nil {
			return err
		}
		res := proc.Process(ctx, path)
		report(res)
		if !res.OK() {
			return res.Err
		}
		_, err := q.Remove(ctx, path)
		return err
	}

	w, err := watcher.New(watcher.Options{
		Dir:    cfg.Paths.VoiceNotes,
		Filter: newFilter(cfg),
		Settle: time.Duration(cfg.Watcher.SettleMillis) * time.Millisecond,
	}, handler, ledger, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	color.Cyan("Watching %s (Ctrl+C to stop)", cfg.Paths.VoiceNotes)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	color.Cyan("Watcher stopped")
	return nil
}

func report(res processor.Result) {
	switch {
	case !res.OK():
		color.Red("Failed: %s at %s: %v", res.Item, res.FailedAt, res.Err)
	case res.PublishErr != nil:
		color.Yellow("Processed %s, Notion failed but backup saved at: %s", res.Title, res.BackupPath)
	default:
		color.Green("Processed: %s (%s summary)", res.Title, res.SummarySource)
	}
}

// decider asks on stdin whether to drop a failed item unless yes is set.
func decider(yes bool) processor.DecisionFunc {
	return func(item string, err error) bool {
		if yes {
			return true
		}
		color.Red("Failed to process: %s", item)
		return confirm("Remove from queue anyway?")
	}
}

func confirm(question string) bool {
	fmt.Printf("%s (y/n): ", question)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func unquoteAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if len(item) >= 2 && (item[0] == '"' || item[0] == '\'') && item[len(item)-1] == item[0] {
			item = item[1 : len(item)-1]
		}
		out = append(out, item)
	}
	return out
}

func uniqueItems(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("items"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
