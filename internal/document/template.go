package document

import (
	"context"
	"fmt"
	"os"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"

	"github.com/jnxjent/gijiro3/internal/logger"
)

const (
	minutesMarker = "■ 議事"
	closingText   = "以上"
	documentFont  = "Meiryo"

	// A populated minutes document is never this small; anything under
	// the threshold means the write went wrong.
	minOutputBytes = 1000
)

type implTemplate struct {
	logger logger.Logger
}

// NewTemplate creates a Template processor
func NewTemplate(log logger.Logger) Template {
	return &implTemplate{logger: log}
}

// Labels harvests the ordered field labels from every table of the
// template: the first cell of each non-empty row, trailing colon and
// whitespace stripped. Labels are not deduplicated here; downstream maps
// built on normalized keys deduplicate implicitly (last seen wins).
func (t *implTemplate) Labels(ctx context.Context, templatePath string) ([]string, error) {
	root, err := godocx.OpenDocument(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}

	var labels []string
	eachTable(root, func(table *ctypes.Table) {
		eachRow(table, 1, func(cells []*ctypes.Cell) {
			label := NormalizeLabel(cellText(cells[0]))
			if label != "" {
				labels = append(labels, label)
			}
		})
	})

	t.logger.Debug(ctx, "Harvested %d labels from template", len(labels))
	return labels, nil
}

// Render populates the template's tables from the extracted fields,
// inserts the transcript into the minutes section and writes the final
// document to outputPath.
func (t *implTemplate) Render(ctx context.Context, templatePath, outputPath string, fields map[string]string, transcript string) error {
	root, err := godocx.OpenDocument(templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}

	t.populateTables(ctx, root, fields)

	if err := t.insertMinutes(ctx, root, transcript); err != nil {
		return err
	}

	applyUniformFont(root, documentFont)

	if err := root.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("stat output document: %w", err)
	}
	if info.Size() < minOutputBytes {
		return fmt.Errorf("output document is undersized (%d bytes): %s", info.Size(), outputPath)
	}

	return nil
}

// populateTables writes each matched field value into the second cell of
// its row. A row whose label has no extracted value gets its second cell
// blanked so no stale template text survives.
func (t *implTemplate) populateTables(ctx context.Context, root *docx.RootDoc, fields map[string]string) {
	normalized := NormalizeKeys(fields)

	eachTable(root, func(table *ctypes.Table) {
		eachRow(table, 2, func(cells []*ctypes.Cell) {
			label := NormalizeLabel(cellText(cells[0]))

			value, ok := normalized[label]
			if !ok {
				setCellText(cells[1], "")
				t.logger.Debug(ctx, "No extracted value for label %q, cell cleared", label)
				return
			}

			setCellText(cells[1], FormatFieldValue(label, value))
		})
	})
}
