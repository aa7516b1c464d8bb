package config

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	Audio         AudioConfig         `yaml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summarization SummarizationConfig `yaml:"summarization"`
	Notion        NotionConfig        `yaml:"notion"`
	Company       CompanyConfig       `yaml:"company"`
	Backup        BackupConfig        `yaml:"backup"`
	Watcher       WatcherConfig       `yaml:"watcher"`
	Logging       LoggingConfig       `yaml:"logging"`

	// Credentials never come from the YAML file.
	Credentials Credentials `yaml:"-"`
}

type PathsConfig struct {
	VoiceNotes  string `yaml:"voice_notes"`
	ChunkDir    string `yaml:"chunk_dir"`
	BackupDir   string `yaml:"backup_dir"`
	QueueFile   string `yaml:"queue_file"`
	LedgerFile  string `yaml:"ledger_file"`
	DownloadDir string `yaml:"download_dir"`
	PromptFile  string `yaml:"prompt_file"`
}

type AudioConfig struct {
	TargetBitrate string   `yaml:"target_bitrate"`
	MaxChunkBytes int64    `yaml:"max_chunk_bytes"`
	Extensions    []string `yaml:"extensions"`
	FFmpegPath    string   `yaml:"ffmpeg_path"`
	FFprobePath   string   `yaml:"ffprobe_path"`
}

type TranscriptionConfig struct {
	Providers   []string         `yaml:"providers"`
	OpenAIModel string           `yaml:"openai_model"`
	GroqModel   string           `yaml:"groq_model"`
	GroqBaseURL string           `yaml:"groq_base_url"`
	WhisperCpp  WhisperCppConfig `yaml:"whisper_cpp"`
}

type WhisperCppConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type SummarizationConfig struct {
	Providers      []string `yaml:"providers"`
	GeminiModel    string   `yaml:"gemini_model"`
	OpenAIModel    string   `yaml:"openai_model"`
	AnthropicModel string   `yaml:"anthropic_model"`
	OllamaModel    string   `yaml:"ollama_model"`
	MaxTokens      int      `yaml:"max_tokens"`
}

type NotionConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Version        string  `yaml:"version"`
	TitleProperty  string  `yaml:"title_property"`
	DateProperty   string  `yaml:"date_property"`
	MaxBlockSize   int     `yaml:"max_block_size"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	RateLimit      float64 `yaml:"rate_limit"`
}

type CompanyConfig struct {
	Name      string `yaml:"name"`
	Shorthand string `yaml:"shorthand"`
}

type BackupConfig struct {
	Docx bool `yaml:"docx"`
}

type WatcherConfig struct {
	SettleMillis   int      `yaml:"settle_millis"`
	TempAgeSeconds int      `yaml:"temp_age_seconds"`
	TempPatterns   []string `yaml:"temp_patterns"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Credentials are read from the environment (and .env).
type Credentials struct {
	OpenAIKey        string
	GroqKey          string
	GeminiKeys       []string
	AnthropicKey     string
	OllamaURL        string
	NotionKey        string
	NotionDatabaseID string
}
