package minutes

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/jnxjent/gijiro3/internal/media"
)

// transcribeAndCorrect drives transcription and correction of every
// chunk with at most batch-size calls in flight, then concatenates the
// corrected texts in strictly increasing chunk-index order. The merge
// order is independent of which network call completes first: each
// result lands in its chunk's slot. Any chunk failure aborts the whole
// job, so no chunk can go silently missing.
func (p *implPipeline) transcribeAndCorrect(ctx context.Context, mediaPath string, chunks []media.Chunk, workDir string) (string, error) {
	results := make([]string, len(chunks))
	sem := semaphore.NewWeighted(int64(p.cfg.Performance.BatchSize))

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			text, err := p.processChunk(ctx, mediaPath, chunk, workDir)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", chunk.Index, err)
			}

			results[chunk.Index] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(results, "\n"), nil
}

// processChunk materializes one audio segment, transcribes it and
// immediately submits the merged utterance text for correction.
// Correction happens chunk by chunk, so its quality is bounded by local
// context rather than the whole meeting.
func (p *implPipeline) processChunk(ctx context.Context, mediaPath string, chunk media.Chunk, workDir string) (string, error) {
	segPath, err := p.media.ExtractChunk(ctx, mediaPath, chunk, workDir)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(segPath); err != nil {
			p.logger.Warn(ctx, "Failed to remove segment %s: %v", segPath, err)
		}
	}()

	audio, err := os.ReadFile(segPath)
	if err != nil {
		return "", fmt.Errorf("read segment: %w", err)
	}

	utterances, err := p.transcriber.Transcribe(ctx, audio, "audio/wav")
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	p.logger.Debug(ctx, "Chunk %d transcribed: %d utterances", chunk.Index, len(utterances))

	return p.correct(ctx, formatUtterances(utterances))
}
