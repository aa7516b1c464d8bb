package audio

import "context"

// Chunker splits an audio file into upload-sized segments.
type Chunker interface {
	// Chunk wipes any leftover chunk directory, then exports the source into
	// a fresh one. The caller must Close the returned set. On error the
	// directory has already been removed.
	Chunk(ctx context.Context, path string) (*ChunkSet, error)
}

// Source describes a probed local audio file.
type Source struct {
	Path       string
	DurationMs int64
	Channels   int
}
