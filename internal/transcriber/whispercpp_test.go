package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedExecutor struct {
	args []string
}

func (s *scriptedExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return s.ExecuteInDir(ctx, "", name, args...)
}

func (s *scriptedExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	s.args = args
	var prefix string
	for i, a := range args {
		if a == "--output-file" {
			prefix = args[i+1]
		}
	}
	return "", os.WriteFile(prefix+".txt", []byte("\n local words \n"), 0644)
}

func TestWhisperCppTranscribeChunk(t *testing.T) {
	chunk := filepath.Join(t.TempDir(), "chunk_001.mp3")
	exec := &scriptedExecutor{}

	p := NewWhisperCpp(WhisperCppOptions{
		BinaryPath: "./whisper-cli",
		ModelPath:  "models/ggml-base.bin",
		Language:   "en",
		Threads:    4,
	}, exec)
	require.True(t, p.Available())

	text, err := p.TranscribeChunk(context.Background(), chunk)
	require.NoError(t, err)
	assert.Equal(t, "local words", text)
	assert.Contains(t, exec.args, "models/ggml-base.bin")
	assert.NotContains(t, exec.args, "--prompt")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(chunk), "chunk_001.txt"))
}

func TestWhisperCppUnavailableWithoutModel(t *testing.T) {
	p := NewWhisperCpp(WhisperCppOptions{BinaryPath: "./whisper-cli"}, &scriptedExecutor{})
	assert.False(t, p.Available())
}
