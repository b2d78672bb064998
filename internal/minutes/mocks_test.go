package minutes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jnxjent/gijiro3/internal/keywords"
	"github.com/jnxjent/gijiro3/internal/media"
	"github.com/jnxjent/gijiro3/internal/transcriber"
)

// fakeMedia fabricates segments without shelling out to ffmpeg.
type fakeMedia struct {
	duration float64
}

func (f *fakeMedia) Normalize(ctx context.Context, path string) (string, error) {
	fixed := path + "_fixed"
	if err := os.WriteFile(fixed, []byte("normalized"), 0644); err != nil {
		return "", err
	}
	return fixed, nil
}

func (f *fakeMedia) Duration(ctx context.Context, path string) (float64, error) {
	return f.duration, nil
}

func (f *fakeMedia) ExtractChunk(ctx context.Context, path string, chunk media.Chunk, destDir string) (string, error) {
	seg := filepath.Join(destDir, fmt.Sprintf("chunk_%04d.wav", chunk.Index))
	if err := os.WriteFile(seg, []byte(fmt.Sprintf("audio-%d", chunk.Index)), 0644); err != nil {
		return "", err
	}
	return seg, nil
}

// fakeTranscriber derives its transcript from the audio payload and can
// delay and count in-flight calls.
type fakeTranscriber struct {
	delay       func(audio []byte)
	err         error
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mimetype string) ([]transcriber.Utterance, error) {
	cur := f.inFlight.Add(1)
	for {
		prev := f.maxInFlight.Load()
		if cur <= prev || f.maxInFlight.CompareAndSwap(prev, cur) {
			break
		}
	}
	defer f.inFlight.Add(-1)

	if f.delay != nil {
		f.delay(audio)
	}
	if f.err != nil {
		return nil, f.err
	}

	return []transcriber.Utterance{
		{Speaker: 0, Transcript: "text-from-" + string(audio)},
	}, nil
}

// fakeGenerator scripts the LLM collaborator per call.
type fakeGenerator struct {
	fn    func(system, user string) (string, error)
	mu    sync.Mutex
	calls []string
}

func (f *fakeGenerator) Complete(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, user)
	f.mu.Unlock()
	return f.fn(system, user)
}

// fakeKeywords is an in-memory Repository snapshot.
type fakeKeywords struct {
	rules []keywords.Rule
}

func (f *fakeKeywords) List(ctx context.Context) []keywords.Rule { return f.rules }
func (f *fakeKeywords) Get(ctx context.Context, id string) (keywords.Rule, bool) {
	return keywords.Rule{}, false
}
func (f *fakeKeywords) Add(ctx context.Context, reading string, wrong []string, canonical string) (keywords.Rule, error) {
	return keywords.Rule{}, nil
}
func (f *fakeKeywords) Update(ctx context.Context, id, reading string, wrong []string, canonical string) error {
	return nil
}
func (f *fakeKeywords) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeKeywords) Reload(ctx context.Context) error            { return nil }

// fakeTemplate records what Render received.
type fakeTemplate struct {
	labels     []string
	gotFields  map[string]string
	transcript string
}

func (f *fakeTemplate) Labels(ctx context.Context, templatePath string) ([]string, error) {
	return f.labels, nil
}

func (f *fakeTemplate) Render(ctx context.Context, templatePath, outputPath string, fields map[string]string, transcript string) error {
	f.gotFields = fields
	f.transcript = transcript
	return os.WriteFile(outputPath, []byte("rendered document"), 0644)
}

// fakeStorage serves downloads from a map and records stores.
type fakeStorage struct {
	blobs  map[string][]byte
	stored map[string][]byte
}

func (f *fakeStorage) Download(ctx context.Context, ref, destPath string) error {
	data, ok := f.blobs[ref]
	if !ok {
		return fmt.Errorf("blob %s not found", ref)
	}
	return os.WriteFile(destPath, data, 0644)
}

func (f *fakeStorage) Store(ctx context.Context, name, srcPath string) (string, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}
	if f.stored == nil {
		f.stored = map[string][]byte{}
	}
	f.stored[name] = data
	return name, nil
}
