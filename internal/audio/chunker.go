package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

// ChunkSet is the set of exported chunks for one source. All files live in
// Dir and are removed together by Close.
type ChunkSet struct {
	Source  Source
	Dir     string
	ChunkMs int64
	Paths   []string
}

// Close removes the chunk directory.
func (s *ChunkSet) Close() error {
	if s == nil || s.Dir == "" {
		return nil
	}
	return os.RemoveAll(s.Dir)
}

// Len returns the number of chunks.
func (s *ChunkSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Paths)
}

func (c *implChunker) Chunk(ctx context.Context, path string) (*ChunkSet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: audio file not found: %s", errs.ErrResource, path)
	}

	// A crash in a previous run can leave chunks behind.
	if err := os.RemoveAll(c.opts.Dir); err != nil {
		return nil, fmt.Errorf("remove stale chunk dir: %w", err)
	}
	if err := os.MkdirAll(c.opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create chunk dir: %w", err)
	}

	set, err := c.export(ctx, path)
	if err != nil {
		c.cleanupDir(ctx)
		if errors.Is(err, errs.ErrDependencyMissing) {
			c.logger.Error(ctx, "ffmpeg/ffprobe not found, install FFmpeg and make sure it is on PATH: %v", err)
		}
		return nil, err
	}
	return set, nil
}

func (c *implChunker) export(ctx context.Context, path string) (*ChunkSet, error) {
	src, err := c.probe(ctx, path)
	if err != nil {
		return nil, err
	}

	chunkMs, err := Plan(src.DurationMs, src.Channels, c.opts.Bitrate, c.opts.MaxChunkBytes)
	if err != nil {
		return nil, fmt.Errorf("plan chunks: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve source path: %w: %w", errs.ErrResource, err)
	}

	total := ChunkCount(src.DurationMs, chunkMs)
	c.logger.Info(ctx, "Splitting %s (%dms, %d ch) into %d chunk(s) of up to %dms",
		filepath.Base(path), src.DurationMs, src.Channels, total, chunkMs)

	set := &ChunkSet{Source: src, Dir: c.opts.Dir, ChunkMs: chunkMs}
	for i := 0; i < total; i++ {
		startMs := int64(i) * chunkMs
		endMs := min(int64(i+1)*chunkMs, src.DurationMs)
		if startMs >= endMs {
			continue
		}

		name := fmt.Sprintf("chunk_%03d.mp3", i)
		if err := c.exportSlice(ctx, absPath, name, startMs, endMs); err != nil {
			return nil, fmt.Errorf("export chunk %d: %w", i, err)
		}
		set.Paths = append(set.Paths, filepath.Join(c.opts.Dir, name))
	}

	return set, nil
}

// exportSlice encodes [startMs, endMs) of the source as a standalone mp3
// named dst inside the chunk directory. ffmpeg runs with the chunk
// directory as its working dir.
func (c *implChunker) exportSlice(ctx context.Context, src, dst string, startMs, endMs int64) error {
	args := []string{
		"-y",
		"-v", "error",
		"-ss", formatSeconds(startMs),
		"-t", formatSeconds(endMs - startMs),
		"-i", src,
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", c.opts.Bitrate,
		dst,
	}

	if _, err := c.executor.ExecuteInDir(ctx, c.opts.Dir, c.opts.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

func (c *implChunker) cleanupDir(ctx context.Context) {
	if err := os.RemoveAll(c.opts.Dir); err != nil {
		c.logger.Warn(ctx, "Failed to remove chunk dir %s: %v", c.opts.Dir, err)
	}
}

func formatSeconds(ms int64) string {
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}
