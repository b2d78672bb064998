package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jnxjent/gijiro3/internal/logger"
)

type implStorage struct {
	root   string
	logger logger.Logger
}

// NewLocal creates a Storage rooted in a local directory. Blob-style URLs
// are resolved to store-relative names by dropping the scheme, host and
// container segment, mirroring how the upstream store names artifacts.
func NewLocal(root string, log logger.Logger) Storage {
	return &implStorage{root: root, logger: log}
}

func (s *implStorage) Download(ctx context.Context, ref, destPath string) error {
	name, err := refToName(ref)
	if err != nil {
		return err
	}

	src := filepath.Join(s.root, filepath.FromSlash(name))
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("download %s: %w", name, err)
	}

	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}

	s.logger.Debug(ctx, "Downloaded %s -> %s", name, destPath)
	return nil
}

func (s *implStorage) Store(ctx context.Context, name, srcPath string) (string, error) {
	dest := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create store dir: %w", err)
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", srcPath, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}

	s.logger.Info(ctx, "Stored artifact %s", name)
	return name, nil
}

// refToName maps a blob URL to its store-relative name: the URL path
// minus the leading container segment. Non-URL refs pass through.
func refToName(ref string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(ref), "http") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse blob URL %q: %w", ref, err)
	}

	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid blob URL %q", ref)
	}

	name, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", fmt.Errorf("unescape blob URL %q: %w", ref, err)
	}
	return name, nil
}
