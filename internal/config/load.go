package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, merges environment credentials and fills
// defaults. It does not validate; call Validate before use.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	mergeWithEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config built only from defaults and the environment.
func Default() *Config {
	cfg := &Config{}
	mergeWithEnv(cfg)
	applyDefaults(cfg)
	return cfg
}

// LoadEnv loads a .env file into the process environment when present.
// A missing file is not an error.
func LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func mergeWithEnv(cfg *Config) {
	c := &cfg.Credentials
	c.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	c.GroqKey = os.Getenv("GROQ_API_KEY")
	c.AnthropicKey = os.Getenv("ANTHROPIC_API_KEY")
	c.OllamaURL = os.Getenv("OLLAMA_BASE_URL")
	c.NotionKey = os.Getenv("NOTION_API_KEY")
	c.NotionDatabaseID = os.Getenv("NOTION_DATABASE_ID")
	c.GeminiKeys = splitKeys(os.Getenv("GEMINI_API_KEY"))

	if v := os.Getenv("VOICE_NOTES_FOLDER"); v != "" {
		cfg.Paths.VoiceNotes = v
	}
	if v := os.Getenv("COMPANY_NAME"); v != "" {
		cfg.Company.Name = v
	}
	if v := os.Getenv("COMPANY_SHORTHAND"); v != "" {
		cfg.Company.Shorthand = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func applyDefaults(cfg *Config) {
	if cfg.Paths.ChunkDir == "" {
		cfg.Paths.ChunkDir = "temp_voice_chunks"
	}
	if cfg.Paths.BackupDir == "" {
		cfg.Paths.BackupDir = "transcription_backups"
	}
	if cfg.Paths.QueueFile == "" {
		cfg.Paths.QueueFile = "processing_queue.txt"
	}
	if cfg.Paths.LedgerFile == "" {
		cfg.Paths.LedgerFile = "processed_files.txt"
	}
	if cfg.Paths.DownloadDir == "" {
		cfg.Paths.DownloadDir = "temp_downloads"
	}
	if cfg.Paths.PromptFile == "" {
		cfg.Paths.PromptFile = "post_processing_prompt.txt"
	}

	if cfg.Audio.TargetBitrate == "" {
		cfg.Audio.TargetBitrate = "192k"
	}
	if cfg.Audio.MaxChunkBytes == 0 {
		cfg.Audio.MaxChunkBytes = 24.5 * 1024 * 1024
	}
	if len(cfg.Audio.Extensions) == 0 {
		cfg.Audio.Extensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg"}
	}
	if cfg.Audio.FFmpegPath == "" {
		cfg.Audio.FFmpegPath = "ffmpeg"
	}
	if cfg.Audio.FFprobePath == "" {
		cfg.Audio.FFprobePath = "ffprobe"
	}

	if len(cfg.Transcription.Providers) == 0 {
		cfg.Transcription.Providers = []string{"groq", "openai"}
	}
	if cfg.Transcription.OpenAIModel == "" {
		cfg.Transcription.OpenAIModel = "whisper-1"
	}
	if cfg.Transcription.GroqModel == "" {
		cfg.Transcription.GroqModel = "whisper-large-v3-turbo"
	}
	if cfg.Transcription.GroqBaseURL == "" {
		cfg.Transcription.GroqBaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Transcription.WhisperCpp.Threads == 0 {
		cfg.Transcription.WhisperCpp.Threads = 8
	}
	if cfg.Transcription.WhisperCpp.Language == "" {
		cfg.Transcription.WhisperCpp.Language = "auto"
	}

	if len(cfg.Summarization.Providers) == 0 {
		cfg.Summarization.Providers = []string{"gemini", "openai"}
	}
	if cfg.Summarization.GeminiModel == "" {
		cfg.Summarization.GeminiModel = "gemini-2.5-pro"
	}
	if cfg.Summarization.OpenAIModel == "" {
		cfg.Summarization.OpenAIModel = "gpt-4o"
	}
	if cfg.Summarization.AnthropicModel == "" {
		cfg.Summarization.AnthropicModel = "claude-3-haiku-20240307"
	}
	if cfg.Summarization.OllamaModel == "" {
		cfg.Summarization.OllamaModel = "mistral"
	}
	if cfg.Summarization.MaxTokens == 0 {
		cfg.Summarization.MaxTokens = 4000
	}

	if cfg.Notion.BaseURL == "" {
		cfg.Notion.BaseURL = "https://api.notion.com/v1"
	}
	if cfg.Notion.Version == "" {
		cfg.Notion.Version = "2022-06-28"
	}
	if cfg.Notion.TitleProperty == "" {
		cfg.Notion.TitleProperty = "Title"
	}
	if cfg.Notion.DateProperty == "" {
		cfg.Notion.DateProperty = "Meeting Date"
	}
	if cfg.Notion.MaxBlockSize == 0 {
		cfg.Notion.MaxBlockSize = 2000
	}
	if cfg.Notion.TimeoutSeconds == 0 {
		cfg.Notion.TimeoutSeconds = 10
	}
	if cfg.Notion.RateLimit == 0 {
		cfg.Notion.RateLimit = 3
	}

	if cfg.Company.Name == "" {
		cfg.Company.Name = "your company"
	}
	if cfg.Company.Shorthand == "" {
		cfg.Company.Shorthand = "your company"
	}

	if cfg.Watcher.SettleMillis == 0 {
		cfg.Watcher.SettleMillis = 3000
	}
	if cfg.Watcher.TempAgeSeconds == 0 {
		cfg.Watcher.TempAgeSeconds = 30
	}
	if len(cfg.Watcher.TempPatterns) == 0 {
		cfg.Watcher.TempPatterns = []string{
			"temp", "tmp", "recording", "rec_", ".part", ".tmp", "~",
			"untitled", "new recording", "voice memo",
		}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
