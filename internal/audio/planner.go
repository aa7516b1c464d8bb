package audio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

// ErrUnplannable is returned when no chunk duration can be computed.
var ErrUnplannable = errors.New("unplannable chunk duration")

// ParseBitrate parses a declared bitrate such as "192k" into kbps.
func ParseBitrate(bitrate string) (int, error) {
	raw := strings.TrimSpace(bitrate)
	raw = strings.TrimSuffix(strings.TrimSuffix(raw, "k"), "K")
	kbps, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: invalid bitrate format %q", ErrUnplannable, errs.ErrConfiguration, bitrate)
	}
	if kbps <= 0 {
		return 0, fmt.Errorf("%w: %w: bitrate must be positive, got %q", ErrUnplannable, errs.ErrConfiguration, bitrate)
	}
	return kbps, nil
}

// Plan returns the longest chunk duration in milliseconds whose size at the
// declared bitrate fits in maxChunkBytes, clamped to the source duration.
//
// The estimate uses the declared bitrate rather than a measured one, so the
// configured ceiling should leave some headroom below the provider limit.
// channels is accepted for callers that know it but does not change the
// estimate: the encoder bitrate already covers all channels.
func Plan(durationMs int64, channels int, bitrate string, maxChunkBytes int64) (int64, error) {
	if durationMs <= 0 {
		return 0, fmt.Errorf("%w: source duration %dms", ErrUnplannable, durationMs)
	}
	if maxChunkBytes <= 0 {
		return 0, fmt.Errorf("%w: %w: max chunk size must be positive, got %d", ErrUnplannable, errs.ErrConfiguration, maxChunkBytes)
	}

	kbps, err := ParseBitrate(bitrate)
	if err != nil {
		return 0, err
	}

	bytesPerSecond := float64(kbps) * 1000 / 8
	if bytesPerSecond <= 0 {
		return 0, fmt.Errorf("%w: %w: bytes per second %.2f", ErrUnplannable, errs.ErrConfiguration, bytesPerSecond)
	}

	chunkMs := int64(math.Floor(float64(maxChunkBytes) / bytesPerSecond * 1000))
	if chunkMs > durationMs {
		chunkMs = durationMs
	}
	if chunkMs <= 0 {
		return 0, fmt.Errorf("%w: max chunk size %d bytes holds less than 1ms at %s", ErrUnplannable, maxChunkBytes, bitrate)
	}
	return chunkMs, nil
}

// EstimateBytes is the size Plan assumes for durationMs at bitrate.
func EstimateBytes(durationMs int64, bitrate string) (int64, error) {
	kbps, err := ParseBitrate(bitrate)
	if err != nil {
		return 0, err
	}
	return int64(float64(durationMs) / 1000 * float64(kbps) * 1000 / 8), nil
}

// ChunkCount is the number of chunks a source of durationMs splits into.
func ChunkCount(durationMs, chunkMs int64) int {
	if chunkMs <= 0 {
		return 0
	}
	return int((durationMs + chunkMs - 1) / chunkMs)
}
