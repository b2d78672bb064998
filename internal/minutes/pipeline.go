package minutes

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jnxjent/gijiro3/internal/keywords"
	"github.com/jnxjent/gijiro3/internal/media"
)

// Run executes the whole transformation for one job:
// download → fast-start remux → chunk → transcribe+correct (bounded
// fan-out) → keyword substitution → speaker resolution → field
// extraction → template population + minutes insertion → store.
func (p *implPipeline) Run(ctx context.Context, job Job) (string, error) {
	start := time.Now()
	p.logger.Info(ctx, "Starting job %s", job.JobID)

	workDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "job-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		// Cleanup is best effort; a leftover temp dir never fails a job.
		if err := os.RemoveAll(workDir); err != nil {
			p.logger.Warn(ctx, "Failed to remove work dir %s: %v", workDir, err)
		}
	}()

	localMedia := filepath.Join(workDir, uuid.NewString()+mediaExt(job.BlobURL))
	if err := p.storage.Download(ctx, job.BlobURL, localMedia); err != nil {
		return "", fmt.Errorf("download media: %w", err)
	}

	normalized, err := p.media.Normalize(ctx, localMedia)
	if err != nil {
		return "", err
	}

	duration, err := p.media.Duration(ctx, normalized)
	if err != nil {
		return "", err
	}

	chunks := media.Plan(duration,
		float64(p.cfg.Chunking.LengthSeconds),
		float64(p.cfg.Chunking.OverlapSeconds))
	if len(chunks) == 0 {
		return "", fmt.Errorf("media has no playable duration: %s", job.BlobURL)
	}
	p.logger.Info(ctx, "Job %s: %.0fs of audio in %d chunks", job.JobID, duration, len(chunks))

	transcript, err := p.transcribeAndCorrect(ctx, normalized, chunks, workDir)
	if err != nil {
		return "", err
	}

	// Keyword dictionary snapshot is taken once per job.
	transcript = keywords.Apply(transcript, p.keywords.List(ctx))

	templatePath := filepath.Join(workDir, uuid.NewString()+".docx")
	if err := p.storage.Download(ctx, job.TemplateURL, templatePath); err != nil {
		return "", fmt.Errorf("download template: %w", err)
	}

	labels, err := p.template.Labels(ctx, templatePath)
	if err != nil {
		return "", err
	}

	speakerMap, err := p.resolveSpeakers(ctx, transcript)
	if err != nil {
		return "", err
	}
	transcript = applySpeakerMap(transcript, speakerMap)

	fields, err := p.extractFields(ctx, transcript, labels)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(workDir, job.JobID+".docx")
	if err := p.template.Render(ctx, templatePath, outputPath, fields, transcript); err != nil {
		return "", err
	}

	ref, err := p.storage.Store(ctx, "processed/"+job.JobID+".docx", outputPath)
	if err != nil {
		return "", fmt.Errorf("store document: %w", err)
	}

	p.logger.Info(ctx, "Job %s completed in %s: %s", job.JobID, time.Since(start), ref)
	return ref, nil
}

// mediaExt preserves the source extension so ffmpeg can sniff the
// container; query strings on blob URLs are ignored.
func mediaExt(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}
	if ext := path.Ext(ref); ext != "" {
		return ext
	}
	return ".mp4"
}
