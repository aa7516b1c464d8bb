package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type probeOutput struct {
	Streams []struct {
		Channels int `json:"channels"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probe reads duration and channel count with ffprobe.
func (c *implChunker) probe(ctx context.Context, path string) (Source, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "format=duration:stream=channels",
		"-of", "json",
		path,
	}

	out, err := c.executor.Execute(ctx, c.opts.FFprobePath, args...)
	if err != nil {
		return Source{}, fmt.Errorf("ffprobe: %w", err)
	}

	var parsed probeOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return Source{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	seconds, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil {
		return Source{}, fmt.Errorf("parse duration %q: %w", parsed.Format.Duration, err)
	}

	src := Source{
		Path:       path,
		DurationMs: int64(math.Round(seconds * 1000)),
		Channels:   1,
	}
	if len(parsed.Streams) > 0 && parsed.Streams[0].Channels > 0 {
		src.Channels = parsed.Streams[0].Channels
	}
	return src, nil
}
