package minutes

import "context"

// Pipeline turns one recorded meeting into a populated minutes document.
type Pipeline interface {
	// Run executes the whole transformation for one job and returns the
	// stored reference of the finished document. On error no output is
	// published; temporary artifacts are removed on every path.
	Run(ctx context.Context, job Job) (string, error)
}
