// Package processor sequences one queue item through resolve, transcribe,
// summarize, backup and publish.
package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/voice-notes/internal/audio"
	"github.com/nguyentantai21042004/voice-notes/internal/backup"
	"github.com/nguyentantai21042004/voice-notes/internal/errs"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/markdown"
	"github.com/nguyentantai21042004/voice-notes/internal/notion"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
)

// UnsummarizedNotice heads the body when the raw transcript is published.
const UnsummarizedNotice = "> Unsummarized transcript: no summarization provider produced a result."

// Process runs one item through the pipeline. Failures are reported in the
// Result; the processor itself never stops on an item error.
func (p *implProcessor) Process(ctx context.Context, item string) Result {
	startTime := p.now()
	res := Result{Item: item, RunID: uuid.NewString()}
	log := p.logger.With(map[string]interface{}{"run_id": res.RunID})

	log.Info(ctx, "========================================")
	log.Info(ctx, "Processing: %s", item)
	log.Info(ctx, "========================================")

	p.process(ctx, log, item, &res)

	res.Duration = time.Since(startTime)
	if res.Stage == StageFailed {
		log.Error(ctx, "Failed at %s (%s): %v", res.FailedAt, errs.Kind(res.Err), res.Err)
		return res
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Processing completed: %s", res.Title)
	log.Info(ctx, "Backup: %s", res.BackupPath)
	if res.Page != nil {
		log.Info(ctx, "Notion page: %s", res.Page.URL)
	}
	log.Info(ctx, "Processing time: %s", res.Duration)
	log.Info(ctx, "========================================")
	return res
}

func (p *implProcessor) process(ctx context.Context, log logger.Logger, item string, res *Result) {
	// Resolving
	p.enter(res, StageResolving)
	resolved, err := p.deps.Resolver.Resolve(ctx, item)
	if err != nil {
		p.fail(res, err)
		return
	}
	defer resolved.Cleanup()

	fileName := filepath.Base(resolved.Path)
	res.Title = strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Chunking and transcribing happen per provider inside the transcriber.
	p.enter(res, StageChunking)
	transcript, err := p.deps.Transcriber.Transcribe(ctx, resolved.Path)
	if err != nil && isChunkingError(err) {
		p.fail(res, err)
		return
	}
	p.enter(res, StageTranscribing)
	if err != nil {
		p.fail(res, err)
		return
	}
	res.Transcriber = transcript.Provider
	log.Info(ctx, "Transcribed %d chunk(s) with %s", len(transcript.Chunks), transcript.Provider)

	// Summarizing
	p.enter(res, StageSummarizing)
	summary := p.deps.Summarizer.Summarize(ctx, transcript.Text)
	if summary == nil {
		log.Warn(ctx, "Summarization unavailable, using raw transcript")
		summary = summarizer.Raw(transcript.Text)
	}
	res.SummarySource = summary.Source
	res.Summarizer = summary.Provider

	body := summary.Text
	if summary.Source == summarizer.SourceRaw {
		body = UnsummarizedNotice + "\n\n" + body
	}

	// ConvertingAndBackingUp
	p.enter(res, StageConvertingAndBackingUp)
	blocks := markdown.Convert(body, p.maxBlockSize)
	processedAt := p.now()

	files, err := p.deps.Backup.Write(ctx, backup.Note{
		Title:        res.Title,
		OriginalFile: fileName,
		Body:         body,
		Blocks:       blocks,
		ProcessedAt:  processedAt,
	})
	if err != nil {
		p.fail(res, err)
		return
	}
	res.BackupPath = files.Markdown

	// The backup is the source of truth, so the item counts as processed
	// from here on.
	if err := p.deps.Ledger.MarkProcessed(item); err != nil {
		log.Warn(ctx, "Failed to record %s as processed: %v", item, err)
	}

	// Publishing
	p.enter(res, StagePublishing)
	if p.deps.Publisher == nil {
		log.Warn(ctx, "No publisher configured, backup saved at: %s", res.BackupPath)
	} else {
		page, err := p.deps.Publisher.Publish(ctx, notion.Page{
			Title:  res.Title,
			Date:   processedAt,
			Blocks: blocks,
		})
		if err != nil {
			if !errors.Is(err, errs.ErrPublish) {
				err = fmt.Errorf("%w: %w", errs.ErrPublish, err)
			}
			res.PublishErr = err
			log.Warn(ctx, "Notion failed but backup saved at: %s: %v", res.BackupPath, err)
		} else {
			res.Page = page
		}
	}

	p.enter(res, StageDone)
}

func (p *implProcessor) enter(res *Result, stage Stage) {
	res.Stage = stage
	if p.onStage != nil {
		p.onStage(res.Item, stage)
	}
}

func (p *implProcessor) fail(res *Result, err error) {
	res.FailedAt = res.Stage
	res.Err = err
	p.enter(res, StageFailed)
}

// isChunkingError reports failures that come from preparing audio rather
// than from a transcription provider.
func isChunkingError(err error) bool {
	return errors.Is(err, errs.ErrDependencyMissing) ||
		errors.Is(err, audio.ErrUnplannable) ||
		errors.Is(err, errs.ErrResource)
}
