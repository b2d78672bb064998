package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jnxjent/gijiro3/internal/logger"
)

func TestIsWorkItem(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/jobs/item.json", want: true},
		{path: "/jobs/item.JSON", want: true},
		{path: "/jobs/item.json.tmp", want: false},
		{path: "/jobs/recording.mp4", want: false},
		{path: "/jobs/noext", want: false},
	}

	for _, tt := range tests {
		if got := isWorkItem(tt.path); got != tt.want {
			t.Errorf("isWorkItem(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestStartSweepsAndWatches(t *testing.T) {
	dir := t.TempDir()

	existing := filepath.Join(dir, "pending.json")
	if err := os.WriteFile(existing, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	handled := map[string]bool{}
	seen := make(chan string, 4)
	handler := func(ctx context.Context, filePath string) error {
		mu.Lock()
		handled[filepath.Base(filePath)] = true
		mu.Unlock()
		seen <- filePath
		return nil
	}

	w, err := New(dir, handler, logger.New("error"), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	waitFor := func(name string) {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case <-seen:
				mu.Lock()
				ok := handled[name]
				mu.Unlock()
				if ok {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for %s to be handled", name)
			}
		}
	}

	waitFor("pending.json")

	if err := os.WriteFile(filepath.Join(dir, "fresh.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor("fresh.json")

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancellation")
	}
}
