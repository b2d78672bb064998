package media

import (
	"math"
	"testing"
)

func TestPlanCoversRecording(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		length  float64
		overlap float64
	}{
		{"25 minute recording", 1500, 600, 60},
		{"exactly one chunk", 600, 600, 60},
		{"shorter than one chunk", 432, 600, 60},
		{"long recording", 7265.4, 600, 60},
		{"no overlap", 1000, 300, 0},
		{"tiny stride", 100, 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Plan(tt.total, tt.length, tt.overlap)

			if len(chunks) == 0 {
				t.Fatal("Plan() returned no chunks")
			}

			if chunks[0].Start != 0 {
				t.Errorf("first chunk starts at %v, want 0", chunks[0].Start)
			}

			// Union of [start, start+duration) must cover [0, total)
			// with no gaps.
			covered := 0.0
			for i, c := range chunks {
				if c.Index != i {
					t.Errorf("chunk %d has index %d", i, c.Index)
				}
				if c.Start > covered {
					t.Errorf("gap before chunk %d: covered to %v, chunk starts at %v", i, covered, c.Start)
				}
				if end := c.Start + c.Duration; end > covered {
					covered = end
				}
			}
			if math.Abs(covered-tt.total) > 1e-9 {
				t.Errorf("chunks cover [0, %v), want [0, %v)", covered, tt.total)
			}

			// Interior chunks are full length and overlap the
			// predecessor by exactly the configured overlap.
			for i, c := range chunks {
				if i < len(chunks)-1 && c.Duration != tt.length {
					t.Errorf("interior chunk %d has duration %v, want %v", i, c.Duration, tt.length)
				}
				if i == 0 {
					if c.Overlap != 0 {
						t.Errorf("first chunk has overlap %v, want 0", c.Overlap)
					}
					continue
				}
				prev := chunks[i-1]
				got := prev.Start + prev.Duration - c.Start
				if i < len(chunks)-1 || prev.Duration == tt.length {
					if math.Abs(got-tt.overlap) > 1e-9 {
						t.Errorf("chunk %d overlaps predecessor by %v, want %v", i, got, tt.overlap)
					}
				}
			}
		})
	}
}

func TestPlanTwentyFiveMinuteScenario(t *testing.T) {
	chunks := Plan(1500, 600, 60)

	if len(chunks) != 3 {
		t.Fatalf("Plan(1500, 600, 60) = %d chunks, want 3", len(chunks))
	}

	wantStarts := []float64{0, 540, 1080}
	wantDurations := []float64{600, 600, 420}
	for i, c := range chunks {
		if c.Start != wantStarts[i] {
			t.Errorf("chunk %d start = %v, want %v", i, c.Start, wantStarts[i])
		}
		if c.Duration != wantDurations[i] {
			t.Errorf("chunk %d duration = %v, want %v", i, c.Duration, wantDurations[i])
		}
	}
}

func TestPlanEmptyRecording(t *testing.T) {
	if chunks := Plan(0, 600, 60); len(chunks) != 0 {
		t.Errorf("Plan(0, ...) = %d chunks, want 0", len(chunks))
	}
}

func TestPlanNonPositiveStride(t *testing.T) {
	tests := []struct {
		name    string
		length  float64
		overlap float64
	}{
		{"overlap equals length", 600, 600},
		{"overlap exceeds length", 600, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if chunks := Plan(1500, tt.length, tt.overlap); chunks != nil {
				t.Errorf("Plan(1500, %v, %v) = %d chunks, want nil", tt.length, tt.overlap, len(chunks))
			}
		})
	}
}
