package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Normalize applies a fast-start remux: streams are copied unchanged and
// the container index metadata is moved to the front so the file can be
// read progressively. A stuck ffmpeg is bounded by a hard wall-clock
// timeout; any failure is fatal and the partial output is removed.
func (m *implMedia) Normalize(ctx context.Context, path string) (string, error) {
	ext := filepath.Ext(path)
	fixedPath := strings.TrimSuffix(path, ext) + "_fixed" + ext

	m.logger.Info(ctx, "Applying fast-start remux: %s", path)

	ctx, cancel := context.WithTimeout(ctx, m.remuxTimeout)
	defer cancel()

	args := []string{
		"-y",
		"-i", path,
		"-c", "copy",
		"-movflags", "+faststart",
		fixedPath,
	}

	if _, err := m.executor.Execute(ctx, m.toolchain.FFmpeg, args...); err != nil {
		if rmErr := os.Remove(fixedPath); rmErr != nil && !os.IsNotExist(rmErr) {
			m.logger.Warn(ctx, "Failed to remove partial remux output %s: %v", fixedPath, rmErr)
		}
		return "", fmt.Errorf("faststart remux: %w", err)
	}

	m.logger.Info(ctx, "Fast-start applied: %s", fixedPath)
	return fixedPath, nil
}

// Duration probes the container for its total duration in seconds.
func (m *implMedia) Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := m.executor.Execute(ctx, m.toolchain.FFprobe, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}

	return dur, nil
}
