package document

import (
	"strings"

	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
)

// Helpers over the godocx structure tree. All raw ctypes access is kept
// in this file; the rest of the package works with plain strings.

// paragraphText concatenates the text runs of one paragraph.
func paragraphText(ct *ctypes.Paragraph) string {
	var sb strings.Builder
	for _, child := range ct.Children {
		if child.Run == nil {
			continue
		}
		for _, rc := range child.Run.Children {
			if rc.Text != nil {
				sb.WriteString(rc.Text.Text)
			}
		}
	}
	return sb.String()
}

// cellText concatenates the text of every paragraph in a table cell,
// joining paragraphs with newlines.
func cellText(cell *ctypes.Cell) string {
	var lines []string
	for _, content := range cell.Contents {
		if content.Paragraph != nil {
			lines = append(lines, paragraphText(content.Paragraph))
		}
	}
	return strings.Join(lines, "\n")
}

// setCellText replaces the cell's contents with one paragraph per line of
// value. An empty value leaves a single empty paragraph, clearing any
// pre-existing placeholder text.
func setCellText(cell *ctypes.Cell, value string) {
	lines := strings.Split(value, "\n")

	contents := make([]ctypes.TCBlockContent, 0, len(lines))
	for _, line := range lines {
		contents = append(contents, ctypes.TCBlockContent{
			Paragraph: textParagraph(line),
		})
	}
	cell.Contents = contents
}

// textParagraph builds a plain single-run paragraph.
func textParagraph(text string) *ctypes.Paragraph {
	return &ctypes.Paragraph{
		Children: []ctypes.ParagraphChild{
			{
				Run: &ctypes.Run{
					Children: []ctypes.RunChild{
						{Text: ctypes.TextFromString(text)},
					},
				},
			},
		},
	}
}

// eachTable visits every table in body order.
func eachTable(root *docx.RootDoc, fn func(*ctypes.Table)) {
	for _, child := range root.Document.Body.Children {
		if child.Table != nil {
			fn(child.Table.GetCT())
		}
	}
}

// eachRow visits every row of a table that has at least minCells cells.
func eachRow(table *ctypes.Table, minCells int, fn func(cells []*ctypes.Cell)) {
	for i := range table.RowContents {
		row := table.RowContents[i].Row
		if row == nil {
			continue
		}
		var cells []*ctypes.Cell
		for j := range row.Contents {
			if row.Contents[j].Cell != nil {
				cells = append(cells, row.Contents[j].Cell)
			}
		}
		if len(cells) >= minCells {
			fn(cells)
		}
	}
}

// setRunFonts forces a font on every run of a paragraph.
func setRunFonts(ct *ctypes.Paragraph, font string) {
	for i := range ct.Children {
		run := ct.Children[i].Run
		if run == nil {
			continue
		}
		if run.Property == nil {
			run.Property = &ctypes.RunProperty{}
		}
		run.Property.Fonts = &ctypes.RunFonts{
			Ascii:    font,
			HAnsi:    font,
			EastAsia: font,
		}
	}
}

// applyUniformFont normalizes the font across all paragraphs and table
// cells of the document.
func applyUniformFont(root *docx.RootDoc, font string) {
	for _, child := range root.Document.Body.Children {
		if child.Para != nil {
			setRunFonts(child.Para.GetCT(), font)
		}
		if child.Table != nil {
			eachRow(child.Table.GetCT(), 1, func(cells []*ctypes.Cell) {
				for _, cell := range cells {
					for _, content := range cell.Contents {
						if content.Paragraph != nil {
							setRunFonts(content.Paragraph, font)
						}
					}
				}
			})
		}
	}
}
