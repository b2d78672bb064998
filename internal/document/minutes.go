package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/stypes"
)

// insertMinutes writes the final transcript into the narrative section:
// one paragraph per non-blank line directly after the section marker,
// followed by a right-aligned closing paragraph. Blank paragraphs that
// the template carries after the marker are dropped first. A template
// without the marker is a configuration error and fails the job.
func (t *implTemplate) insertMinutes(ctx context.Context, root *docx.RootDoc, transcript string) error {
	body := root.Document.Body

	markerIdx := -1
	for i, child := range body.Children {
		if child.Para != nil && strings.Contains(paragraphText(child.Para.GetCT()), minutesMarker) {
			markerIdx = i
			break
		}
	}
	if markerIdx == -1 {
		return fmt.Errorf("minutes marker %q not found in template", minutesMarker)
	}

	// Skip the template's blank spacer paragraphs following the marker.
	end := markerIdx + 1
	for end < len(body.Children) {
		child := body.Children[end]
		if child.Para == nil || strings.TrimSpace(paragraphText(child.Para.GetCT())) != "" {
			break
		}
		end++
	}

	head := append([]docx.DocumentChild{}, body.Children[:markerIdx+1]...)
	tail := append([]docx.DocumentChild{}, body.Children[end:]...)

	// AddParagraph appends at the document end; the new children are
	// collected afterwards and spliced in after the marker.
	before := len(body.Children)
	for _, line := range strings.Split(transcript, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		root.AddParagraph(line)
	}
	closing := root.AddParagraph(closingText)
	closing.Justification(stypes.JustificationRight)

	inserted := append([]docx.DocumentChild{}, body.Children[before:]...)

	children := make([]docx.DocumentChild, 0, len(head)+len(inserted)+len(tail))
	children = append(children, head...)
	children = append(children, inserted...)
	children = append(children, tail...)
	body.Children = children

	t.logger.Debug(ctx, "Inserted %d minutes paragraphs after marker", len(inserted))
	return nil
}
