package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/voice-notes/internal/audio"
	"github.com/nguyentantai21042004/voice-notes/internal/errs"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChunker writes n chunk files into a fresh directory per call.
type fakeChunker struct {
	root  string
	n     int
	err   error
	calls int
	sets  []*audio.ChunkSet
}

func (f *fakeChunker) Chunk(ctx context.Context, path string) (*audio.ChunkSet, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	dir := filepath.Join(f.root, fmt.Sprintf("chunks-%d", f.calls))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	set := &audio.ChunkSet{Dir: dir}
	for i := 0; i < f.n; i++ {
		p := filepath.Join(dir, fmt.Sprintf("chunk_%03d.mp3", i))
		if err := os.WriteFile(p, []byte{byte(i)}, 0644); err != nil {
			return nil, err
		}
		set.Paths = append(set.Paths, p)
	}
	f.sets = append(f.sets, set)
	return set, nil
}

type fakeProvider struct {
	name      string
	available bool
	failAt    int // 1-based chunk that fails, 0 for never
	seen      []string
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) TranscribeChunk(ctx context.Context, chunkPath string) (string, error) {
	f.seen = append(f.seen, filepath.Base(chunkPath))
	if f.failAt == len(f.seen) {
		return "", errors.New("503 from upstream")
	}
	return fmt.Sprintf("  %s says %s \n", f.name, filepath.Base(chunkPath)), nil
}

func TestTranscribeJoinsChunksInOrder(t *testing.T) {
	chunker := &fakeChunker{root: t.TempDir(), n: 3}
	groq := &fakeProvider{name: "groq", available: true}

	var progress []int
	tr := New(chunker, []Provider{groq}, logger.Nop(), WithProgress(func(name string, done, total int) {
		progress = append(progress, done)
		assert.Equal(t, 3, total)
	}))

	got, err := tr.Transcribe(context.Background(), "note.m4a")
	require.NoError(t, err)

	want := "groq says chunk_000.mp3\n\ngroq says chunk_001.mp3\n\ngroq says chunk_002.mp3"
	assert.Equal(t, want, got.Text)
	assert.Equal(t, "groq", got.Provider)
	assert.Equal(t, []string{"chunk_000.mp3", "chunk_001.mp3", "chunk_002.mp3"}, groq.seen)
	assert.Equal(t, []int{1, 2, 3}, progress)
	assert.NoDirExists(t, chunker.sets[0].Dir)
}

func TestTranscribeFallsBackForWholeFile(t *testing.T) {
	chunker := &fakeChunker{root: t.TempDir(), n: 3}
	groq := &fakeProvider{name: "groq", available: true, failAt: 2}
	openai := &fakeProvider{name: "openai", available: true}

	got, err := New(chunker, []Provider{groq, openai}, logger.Nop()).
		Transcribe(context.Background(), "note.m4a")
	require.NoError(t, err)

	assert.Equal(t, "openai", got.Provider)
	assert.NotContains(t, got.Text, "groq")
	assert.Len(t, openai.seen, 3)
	assert.Equal(t, 2, chunker.calls)
	for _, set := range chunker.sets {
		assert.NoDirExists(t, set.Dir)
	}
}

func TestTranscribeExhaustedReturnsNothing(t *testing.T) {
	chunker := &fakeChunker{root: t.TempDir(), n: 4}
	groq := &fakeProvider{name: "groq", available: true, failAt: 4}
	openai := &fakeProvider{name: "openai", available: true, failAt: 3}

	got, err := New(chunker, []Provider{groq, openai}, logger.Nop()).
		Transcribe(context.Background(), "note.m4a")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, provider.ErrExhausted))
	assert.True(t, errors.Is(err, errs.ErrProvider))
	for _, set := range chunker.sets {
		assert.NoDirExists(t, set.Dir)
	}
}

func TestTranscribeSkipsUnconfiguredProvider(t *testing.T) {
	chunker := &fakeChunker{root: t.TempDir(), n: 1}
	groq := &fakeProvider{name: "groq", available: false}
	openai := &fakeProvider{name: "openai", available: true}

	got, err := New(chunker, []Provider{groq, openai}, logger.Nop()).
		Transcribe(context.Background(), "note.m4a")
	require.NoError(t, err)
	assert.Equal(t, "openai", got.Provider)
	assert.Empty(t, groq.seen)
	assert.Equal(t, 1, chunker.calls)
}

func TestTranscribeChunkFailureAdvancesProvider(t *testing.T) {
	chunker := &fakeChunker{err: fmt.Errorf("ffprobe: %w", errs.ErrDependencyMissing)}
	groq := &fakeProvider{name: "groq", available: true}
	openai := &fakeProvider{name: "openai", available: true}

	_, err := New(chunker, []Provider{groq, openai}, logger.Nop()).
		Transcribe(context.Background(), "note.m4a")
	require.Error(t, err)
	assert.Equal(t, 2, chunker.calls)
	assert.True(t, errors.Is(err, errs.ErrDependencyMissing))
	assert.Empty(t, groq.seen)
}

func TestTranscribeZeroChunksIsProviderFailure(t *testing.T) {
	chunker := &fakeChunker{root: t.TempDir(), n: 0}
	groq := &fakeProvider{name: "groq", available: true}

	_, err := New(chunker, []Provider{groq}, logger.Nop()).
		Transcribe(context.Background(), "note.m4a")
	assert.True(t, errors.Is(err, provider.ErrExhausted))
}
