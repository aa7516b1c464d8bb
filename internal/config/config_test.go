package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

func validConfig() Config {
	return Config{
		Audio: AudioConfig{TargetBitrate: "192k"},
		Credentials: Credentials{
			GroqKey:          "gsk-test",
			NotionKey:        "secret_test",
			NotionDatabaseID: "db123",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "malformed bitrate",
			mutate:  func(c *Config) { c.Audio.TargetBitrate = "fast" },
			wantErr: true,
		},
		{
			name:    "non-positive bitrate",
			mutate:  func(c *Config) { c.Audio.TargetBitrate = "0k" },
			wantErr: true,
		},
		{
			name:    "missing notion key",
			mutate:  func(c *Config) { c.Credentials.NotionKey = "" },
			wantErr: true,
		},
		{
			name:    "missing notion database",
			mutate:  func(c *Config) { c.Credentials.NotionDatabaseID = "" },
			wantErr: true,
		},
		{
			name: "no transcription credentials",
			mutate: func(c *Config) {
				c.Credentials.GroqKey = ""
				c.Credentials.OpenAIKey = ""
			},
			wantErr: true,
		},
		{
			name: "whisper-cpp only",
			mutate: func(c *Config) {
				c.Credentials.GroqKey = ""
				c.Transcription.Providers = []string{"whisper-cpp"}
				c.Transcription.WhisperCpp = WhisperCppConfig{BinaryPath: "./whisper", ModelPath: "models/base.bin"}
			},
			wantErr: false,
		},
		{
			name:    "unknown summarization provider",
			mutate:  func(c *Config) { c.Summarization.Providers = []string{"gemini", "bard"} },
			wantErr: true,
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("Validate() error should match ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Audio.MaxChunkBytes != 25690112 {
		t.Errorf("MaxChunkBytes = %d, want 25690112", cfg.Audio.MaxChunkBytes)
	}
	if cfg.Notion.MaxBlockSize != 2000 {
		t.Errorf("MaxBlockSize = %d, want 2000", cfg.Notion.MaxBlockSize)
	}
	if got := cfg.Transcription.Providers; len(got) != 2 || got[0] != "groq" || got[1] != "openai" {
		t.Errorf("Transcription.Providers = %v, want [groq openai]", got)
	}
	if cfg.Paths.QueueFile != "processing_queue.txt" {
		t.Errorf("QueueFile = %q", cfg.Paths.QueueFile)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k1, k2,")
	t.Setenv("COMPANY_NAME", "Acme Corp")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
paths:
  voice_notes: "/data/voice"
  backup_dir: "backups"

audio:
  target_bitrate: "128k"

transcription:
  providers: ["openai", "groq"]

summarization:
  providers: ["gemini", "anthropic", "openai"]

notion:
  max_block_size: 1500

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.VoiceNotes != "/data/voice" {
		t.Errorf("VoiceNotes = %v, want /data/voice", cfg.Paths.VoiceNotes)
	}
	if cfg.Audio.TargetBitrate != "128k" {
		t.Errorf("TargetBitrate = %v, want 128k", cfg.Audio.TargetBitrate)
	}
	if cfg.Notion.MaxBlockSize != 1500 {
		t.Errorf("MaxBlockSize = %v, want 1500", cfg.Notion.MaxBlockSize)
	}
	if len(cfg.Summarization.Providers) != 3 {
		t.Errorf("Summarization.Providers = %v", cfg.Summarization.Providers)
	}
	if len(cfg.Credentials.GeminiKeys) != 2 || cfg.Credentials.GeminiKeys[1] != "k2" {
		t.Errorf("GeminiKeys = %v, want [k1 k2]", cfg.Credentials.GeminiKeys)
	}
	if cfg.Company.Name != "Acme Corp" {
		t.Errorf("Company.Name = %v, want Acme Corp", cfg.Company.Name)
	}
	if cfg.Paths.LedgerFile != "processed_files.txt" {
		t.Errorf("LedgerFile default not applied: %q", cfg.Paths.LedgerFile)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadEnv() with missing file error = %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NOTION_DATABASE_ID=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NOTION_DATABASE_ID", "")
	os.Unsetenv("NOTION_DATABASE_ID")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := Default().Credentials.NotionDatabaseID; got != "from-dotenv" {
		t.Errorf("NotionDatabaseID = %q, want from-dotenv", got)
	}
}
