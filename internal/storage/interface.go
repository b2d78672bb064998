package storage

import "context"

// Storage is the blob-store boundary. The core only downloads source
// artifacts and stores the finished document; everything else about the
// store (SAS tokens, containers, retention) lives outside this module.
type Storage interface {
	// Download fetches the artifact behind ref into destPath. ref may
	// be a blob URL or a store-relative name.
	Download(ctx context.Context, ref, destPath string) error

	// Store persists the file at srcPath under name and returns the
	// stored artifact's reference.
	Store(ctx context.Context, name, srcPath string) (string, error)
}
