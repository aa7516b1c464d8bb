package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/audio"
	"github.com/nguyentantai21042004/voice-notes/internal/backup"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/notion"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/queue"
	"github.com/nguyentantai21042004/voice-notes/internal/source"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcriber"
	"github.com/nguyentantai21042004/voice-notes/internal/watcher"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

func transcriptionProviders(cfg *config.Config, exec executor.Executor) []transcriber.Provider {
	var providers []transcriber.Provider
	for _, name := range cfg.Transcription.Providers {
		switch name {
		case "openai":
			providers = append(providers, transcriber.NewOpenAI(cfg.Credentials.OpenAIKey, cfg.Transcription.OpenAIModel))
		case "groq":
			providers = append(providers, transcriber.NewGroq(cfg.Credentials.GroqKey, cfg.Transcription.GroqModel, cfg.Transcription.GroqBaseURL))
		case "whisper-cpp":
			wc := cfg.Transcription.WhisperCpp
			providers = append(providers, transcriber.NewWhisperCpp(transcriber.WhisperCppOptions{
				BinaryPath: wc.BinaryPath,
				ModelPath:  wc.ModelPath,
				Language:   wc.Language,
				Prompt:     wc.Prompt,
				Threads:    wc.Threads,
			}, exec))
		}
	}
	return providers
}

func summarizationProviders(cfg *config.Config) []summarizer.Provider {
	s := cfg.Summarization
	var providers []summarizer.Provider
	for _, name := range s.Providers {
		switch name {
		case "gemini":
			providers = append(providers, summarizer.NewGemini(cfg.Credentials.GeminiKeys, s.GeminiModel))
		case "openai":
			providers = append(providers, summarizer.NewOpenAI(cfg.Credentials.OpenAIKey, s.OpenAIModel, ""))
		case "anthropic":
			providers = append(providers, summarizer.NewAnthropic(cfg.Credentials.AnthropicKey, s.AnthropicModel, s.MaxTokens))
		case "ollama":
			providers = append(providers, summarizer.NewOllama(cfg.Credentials.OllamaURL, s.OllamaModel, s.MaxTokens))
		}
	}
	return providers
}

func newFilter(cfg *config.Config) watcher.Filter {
	return watcher.Filter{
		Extensions:   cfg.Audio.Extensions,
		TempPatterns: cfg.Watcher.TempPatterns,
		TempAge:      time.Duration(cfg.Watcher.TempAgeSeconds) * time.Second,
	}
}

// newProcessor builds the pipeline from config.
func newProcessor(cfg *config.Config, q queue.Queue, ledger queue.Ledger, log logger.Logger, opts ...processor.Option) processor.Processor {
	exec := executor.New()

	chunker := audio.New(audio.Options{
		Dir:           cfg.Paths.ChunkDir,
		Bitrate:       cfg.Audio.TargetBitrate,
		MaxChunkBytes: cfg.Audio.MaxChunkBytes,
		FFmpegPath:    cfg.Audio.FFmpegPath,
		FFprobePath:   cfg.Audio.FFprobePath,
	}, exec, log)

	tr := transcriber.New(chunker, transcriptionProviders(cfg, exec), log,
		transcriber.WithProgress(func(provider string, done, total int) {
			log.Debug(context.Background(), "Transcribed chunk %d/%d with %s", done, total, provider)
		}))

	sum := summarizer.New(summarizationProviders(cfg), summarizer.PromptOptions{
		Files:            []string{filepath.Join("scripts", "processing_prompt.md"), cfg.Paths.PromptFile},
		CompanyName:      cfg.Company.Name,
		CompanyShorthand: cfg.Company.Shorthand,
	}, log)

	pub := notion.New(notion.Options{
		BaseURL:       cfg.Notion.BaseURL,
		Version:       cfg.Notion.Version,
		APIKey:        cfg.Credentials.NotionKey,
		DatabaseID:    cfg.Credentials.NotionDatabaseID,
		TitleProperty: cfg.Notion.TitleProperty,
		DateProperty:  cfg.Notion.DateProperty,
		Timeout:       time.Duration(cfg.Notion.TimeoutSeconds) * time.Second,
		RateLimit:     cfg.Notion.RateLimit,
	}, log)

	return processor.New(processor.Deps{
		Resolver:    source.New(source.Options{DownloadDir: cfg.Paths.DownloadDir}, log),
		Transcriber: tr,
		Summarizer:  sum,
		Backup:      backup.New(backup.Options{Dir: cfg.Paths.BackupDir, Docx: cfg.Backup.Docx}, log),
		Publisher:   pub,
		Queue:       q,
		Ledger:      ledger,
	}, cfg.Notion.MaxBlockSize, log, opts...)
}
