package config

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/audio"
	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned by Validate. It matches errs.ErrConfiguration.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error {
	return errs.ErrConfiguration
}

var (
	transcriptionProviders = map[string]bool{"openai": true, "groq": true, "whisper-cpp": true}
	summarizationProviders = map[string]bool{"gemini": true, "openai": true, "anthropic": true, "ollama": true}
)

// Validate fills defaults and checks the settings needed at startup.
func (c *Config) Validate() error {
	applyDefaults(c)

	var errors ValidationErrors

	if _, err := audio.ParseBitrate(c.Audio.TargetBitrate); err != nil {
		errors = append(errors, ValidationError{
			Field:   "audio.target_bitrate",
			Message: err.Error(),
		})
	}
	if c.Audio.MaxChunkBytes < 0 {
		errors = append(errors, ValidationError{
			Field:   "audio.max_chunk_bytes",
			Message: "max_chunk_bytes must be positive",
		})
	}

	if c.Credentials.NotionKey == "" {
		errors = append(errors, ValidationError{
			Field:   "NOTION_API_KEY",
			Message: "Notion API key is required",
		})
	}
	if c.Credentials.NotionDatabaseID == "" {
		errors = append(errors, ValidationError{
			Field:   "NOTION_DATABASE_ID",
			Message: "Notion database id is required",
		})
	}
	if c.Notion.MaxBlockSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "notion.max_block_size",
			Message: "max_block_size must be positive",
		})
	}

	usable := 0
	for _, name := range c.Transcription.Providers {
		if !transcriptionProviders[name] {
			errors = append(errors, ValidationError{
				Field:   "transcription.providers",
				Message: fmt.Sprintf("unknown provider: %s", name),
			})
			continue
		}
		if c.transcriptionConfigured(name) {
			usable++
		}
	}
	if usable == 0 {
		errors = append(errors, ValidationError{
			Field:   "transcription.providers",
			Message: "no transcription provider has credentials configured",
		})
	}

	for _, name := range c.Summarization.Providers {
		if !summarizationProviders[name] {
			errors = append(errors, ValidationError{
				Field:   "summarization.providers",
				Message: fmt.Sprintf("unknown provider: %s", name),
			})
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be text or json",
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) transcriptionConfigured(name string) bool {
	switch name {
	case "openai":
		return c.Credentials.OpenAIKey != ""
	case "groq":
		return c.Credentials.GroqKey != ""
	case "whisper-cpp":
		return c.Transcription.WhisperCpp.BinaryPath != "" && c.Transcription.WhisperCpp.ModelPath != ""
	}
	return false
}
