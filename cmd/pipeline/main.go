package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jnxjent/gijiro3/internal/config"
	"github.com/jnxjent/gijiro3/internal/document"
	"github.com/jnxjent/gijiro3/internal/keywords"
	"github.com/jnxjent/gijiro3/internal/llm"
	"github.com/jnxjent/gijiro3/internal/logger"
	"github.com/jnxjent/gijiro3/internal/media"
	"github.com/jnxjent/gijiro3/internal/minutes"
	"github.com/jnxjent/gijiro3/internal/storage"
	"github.com/jnxjent/gijiro3/internal/transcriber"
	"github.com/jnxjent/gijiro3/internal/watcher"
	"github.com/jnxjent/gijiro3/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Jobs: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Resolve the ffmpeg toolchain once at startup
	tc := media.ResolveToolchain(cfg.FFmpeg.FFmpegPath, cfg.FFmpeg.FFprobePath, cfg.FFmpeg.BundleDir)
	log.Info(ctx, "Toolchain: ffmpeg=%s ffprobe=%s", tc.FFmpeg, tc.FFprobe)

	// Initialize dependencies
	exec := executor.New()
	med := media.New(tc, exec, log, time.Duration(cfg.FFmpeg.RemuxTimeout)*time.Second)
	tr := transcriber.New(cfg.Transcription.APIKey, cfg.Transcription.BaseURL, cfg.Transcription.Model, log)
	gen := llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	kw, err := keywords.NewRepository(cfg.Keywords.StorePath, log)
	if err != nil {
		log.Error(ctx, "Failed to open keyword store: %v", err)
		os.Exit(1)
	}
	tpl := document.NewTemplate(log)
	st := storage.NewLocal(cfg.Paths.Storage, log)
	pipeline := minutes.New(cfg, med, tr, gen, kw, tpl, st, log)

	handler := func(ctx context.Context, filePath string) error {
		// Work items are terminal: consumed on success and on failure,
		// so a poisoned item never loops.
		defer func() {
			if err := os.Remove(filePath); err != nil {
				log.Warn(ctx, "Failed to remove work item %s: %v", filePath, err)
			}
		}()

		raw, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read work item: %w", err)
		}

		job, err := minutes.DecodeWorkItem(raw)
		if err != nil {
			return err
		}

		ref, err := pipeline.Run(ctx, job)
		if err != nil {
			return err
		}

		log.Info(ctx, "Job %s stored at %s", job.JobID, ref)
		return nil
	}

	// Create watcher with the pipeline as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Jobs, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Minutes Pipeline is ready!")
	log.Info(ctx, "Jobs: %s", cfg.Paths.Jobs)
	log.Info(ctx, "Storage: %s", cfg.Paths.Storage)
	log.Info(ctx, "")
	log.Info(ctx, "  - Chunking: %ds length, %ds overlap", cfg.Chunking.LengthSeconds, cfg.Chunking.OverlapSeconds)
	log.Info(ctx, "  - Transcription model: %s", cfg.Transcription.Model)
	log.Info(ctx, "  - Generation model: %s (%d keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	log.Info(ctx, "  - Chunk batch size: %d", cfg.Performance.BatchSize)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Minutes Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Jobs,
		cfg.Paths.Storage,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
