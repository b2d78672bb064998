package document

import "context"

// Template reads label metadata from, and renders values into, a
// table-bearing minutes template document.
type Template interface {
	// Labels returns the template's field labels in first-seen order.
	Labels(ctx context.Context, templatePath string) ([]string, error)

	// Render populates the template's tables with extracted fields,
	// inserts the transcript into the minutes section and saves the
	// result to outputPath.
	Render(ctx context.Context, templatePath, outputPath string, fields map[string]string, transcript string) error
}
