package media

import "context"

// Media defines the interface for media normalization, probing and
// per-chunk segment extraction
type Media interface {
	// Normalize remuxes the input so container metadata precedes the
	// payload (fast-start). Stream copy only, no re-encode.
	Normalize(ctx context.Context, path string) (string, error)

	// Duration probes the total duration of the media in seconds.
	Duration(ctx context.Context, path string) (float64, error)

	// ExtractChunk materializes one chunk as a 16kHz mono WAV segment
	// under destDir and returns its path.
	ExtractChunk(ctx context.Context, path string, chunk Chunk, destDir string) (string, error)
}
