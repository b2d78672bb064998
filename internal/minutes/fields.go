package minutes

import (
	"context"
	"fmt"
	"strings"

	"github.com/jnxjent/gijiro3/internal/document"
)

const fieldSystem = "あなたは会議の議事録を解析し、指定された情報を正確に抽出するアシスタントです。"

const fieldPrompt = `以下の会議議事録全文から、次の各ラベルに該当する情報を抽出してください。
出力は単一の JSON オブジェクトのみとし、キーはラベルそのまま、値は簡潔な日本語の文字列としてください。
議題のように複数項目になるラベルは、文字列の配列にしてください。
該当する情報がない場合は空文字列にしてください。
JSON 以外の文章は出力しないでください。

ラベル: %s

=== 議事録全文 ===
%s
`

// ExtractionError is written as a label's value when the extraction
// response cannot be parsed even after repair. The label's row still
// renders, making the failure visible instead of aborting the job.
const ExtractionError = "抽出エラー"

// extractFields issues one request for a JSON object keyed by every
// template label. A transport failure is fatal; an unparseable response
// degrades to the error sentinel for every label. List values are
// flattened to 1-based numbered-list strings.
func (p *implPipeline) extractFields(ctx context.Context, transcript string, labels []string) (map[string]string, error) {
	if len(labels) == 0 {
		return map[string]string{}, nil
	}

	prompt := fmt.Sprintf(fieldPrompt, strings.Join(labels, "、"), transcript)
	resp, err := p.generator.Complete(ctx, fieldSystem, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}

	var parsed map[string]any
	if err := decodeObject(resp, &parsed); err != nil {
		p.logger.Warn(ctx, "Malformed field extraction response: %v", err)
		fields := make(map[string]string, len(labels))
		for _, label := range labels {
			fields[label] = ExtractionError
		}
		return fields, nil
	}

	// Response keys may differ from the harvested labels in colon or
	// width form; match on normalized keys, last seen wins.
	byNorm := make(map[string]any, len(parsed))
	for k, v := range parsed {
		byNorm[document.NormalizeLabel(k)] = v
	}

	fields := make(map[string]string, len(labels))
	for _, label := range labels {
		fields[label] = flattenValue(byNorm[document.NormalizeLabel(label)])
	}

	return fields, nil
}

// flattenValue renders one extracted value for storage: strings pass
// through, lists become 1-based numbered lines, anything else is
// stringified.
func flattenValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []any:
		var lines []string
		for _, item := range val {
			s := strings.TrimSpace(fmt.Sprint(item))
			if s == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%d. %s", len(lines)+1, s))
		}
		return strings.Join(lines, "\n")
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
