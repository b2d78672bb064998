package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
)

// Chunk describes one time window of the source media. Index determines
// merge order downstream. Overlap is the duration shared with the
// predecessor chunk; it exists to avoid splitting words at boundaries and
// is NOT deduplicated automatically.
type Chunk struct {
	Index    int
	Start    float64
	Duration float64
	Overlap  float64
}

// Plan splits a recording of total seconds into overlapping windows of
// length seconds with overlap seconds shared between consecutive chunks.
// Starts advance by length-overlap, so the union of chunks covers the
// whole recording with no gaps; only the tail chunk may be shorter.
// A non-positive stride (overlap >= length) yields no chunks.
func Plan(total, length, overlap float64) []Chunk {
	stride := length - overlap
	if stride <= 0 {
		return nil
	}

	var chunks []Chunk
	for k := 0; ; k++ {
		start := float64(k) * stride
		if start >= total {
			break
		}

		dur := length
		if start+dur > total {
			dur = total - start
		}

		ov := overlap
		if k == 0 {
			ov = 0
		}

		chunks = append(chunks, Chunk{
			Index:    k,
			Start:    start,
			Duration: dur,
			Overlap:  ov,
		})
	}

	return chunks
}

// ExtractChunk materializes one chunk as a 16kHz mono PCM WAV file, the
// payload format the transcription service expects. The container-level
// stream copy of Normalize cannot produce a WAV payload, so extraction
// decodes; the audible content is unchanged.
func (m *implMedia) ExtractChunk(ctx context.Context, path string, chunk Chunk, destDir string) (string, error) {
	segPath := filepath.Join(destDir, fmt.Sprintf("chunk_%04d.wav", chunk.Index))

	m.logger.Debug(ctx, "Extracting chunk %d (start=%.1fs dur=%.1fs): %s",
		chunk.Index, chunk.Start, chunk.Duration, segPath)

	args := []string{
		"-y",
		"-ss", strconv.FormatFloat(chunk.Start, 'f', 3, 64),
		"-t", strconv.FormatFloat(chunk.Duration, 'f', 3, 64),
		"-i", path,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		segPath,
	}

	if _, err := m.executor.Execute(ctx, m.toolchain.FFmpeg, args...); err != nil {
		return "", fmt.Errorf("extract chunk %d: %w", chunk.Index, err)
	}

	return segPath, nil
}
