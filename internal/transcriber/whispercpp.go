package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// WhisperCppOptions configures the local whisper.cpp provider.
type WhisperCppOptions struct {
	BinaryPath string
	ModelPath  string
	Language   string
	Prompt     string
	Threads    int
}

type whisperCpp struct {
	opts     WhisperCppOptions
	executor executor.Executor
}

// NewWhisperCpp creates a provider that runs a local whisper.cpp binary.
func NewWhisperCpp(opts WhisperCppOptions, exec executor.Executor) Provider {
	return &whisperCpp{opts: opts, executor: exec}
}

func (w *whisperCpp) Name() string {
	return "whisper-cpp"
}

func (w *whisperCpp) Available() bool {
	return w.opts.BinaryPath != "" && w.opts.ModelPath != ""
}

// TranscribeChunk writes a .txt next to the chunk and reads it back.
func (w *whisperCpp) TranscribeChunk(ctx context.Context, chunkPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(chunkPath, filepath.Ext(chunkPath))

	// -otxt: plain text output
	// -bo 5: best of 5 for better accuracy
	args := []string{
		"-m", w.opts.ModelPath,
		"-f", chunkPath,
		"-otxt",
		"-np",
		"-l", w.opts.Language,
		"-t", strconv.Itoa(w.opts.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if w.opts.Prompt != "" {
		args = append(args, "--prompt", w.opts.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.opts.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	_ = os.Remove(txtPath)

	return strings.TrimSpace(string(data)), nil
}
