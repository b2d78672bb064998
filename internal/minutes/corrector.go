package minutes

import (
	"context"
	"fmt"
	"strings"

	"github.com/jnxjent/gijiro3/internal/transcriber"
)

const correctorSystem = "あなたは日本語整形アシスタントです。"

const correctorPrompt = `以下の音声書き起こしを自然な日本語にしてください。

%s

【出力形式】
[Speaker X] 発話内容
[Speaker X] 発話内容
`

// correct rewrites one raw diarized fragment into fluent prose. The
// "[Speaker X] content" line format and the tags themselves must survive
// verbatim; the corrected text is treated as ground truth downstream,
// with no fallback to the raw transcript.
func (p *implPipeline) correct(ctx context.Context, raw string) (string, error) {
	out, err := p.generator.Complete(ctx, correctorSystem, fmt.Sprintf(correctorPrompt, raw))
	if err != nil {
		return "", fmt.Errorf("correct transcript fragment: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// formatUtterances renders diarized utterances as one tagged line per
// speaker turn.
func formatUtterances(utterances []transcriber.Utterance) string {
	lines := make([]string, 0, len(utterances))
	for _, u := range utterances {
		lines = append(lines, fmt.Sprintf("[Speaker %d] %s", u.Speaker, u.Transcript))
	}
	return strings.Join(lines, "\n")
}
