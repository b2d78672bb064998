package minutes

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const speakerSystem = "あなたは文字起こしを整理し、話者名を推定するアシスタントです。"

const speakerPrompt = `以下の議事録に登場する '[Speaker 0]' や '[Speaker 1]' のような話者表記すべてについて、発言内容から実際の話者名または役職を推定してください。
敬称「さん」は付けず、名前だけにしてください。
推定できない場合は「不明0」のように「不明」と番号を組み合わせてください。
出力は次の形式の JSON オブジェクトのみとし、他の文章は含めないでください:
{"Speaker 0": "田中", "Speaker 1": "不明1"}

=== 議事録全文 ===
%s
`

var reSpeakerTag = regexp.MustCompile(`Speaker\s+\d+`)

// resolveSpeakers asks the model to map every distinct speaker tag in
// the transcript to an inferred real name or role. A transport failure
// is fatal; a malformed response degrades to an empty map and the job
// continues with tags untouched.
//
// Resolution runs once over the full concatenated transcript, which
// assumes diarization tag numbering is stable across chunk boundaries.
func (p *implPipeline) resolveSpeakers(ctx context.Context, transcript string) (map[string]string, error) {
	if !reSpeakerTag.MatchString(transcript) {
		return map[string]string{}, nil
	}

	resp, err := p.generator.Complete(ctx, speakerSystem, fmt.Sprintf(speakerPrompt, transcript))
	if err != nil {
		return nil, fmt.Errorf("resolve speakers: %w", err)
	}

	speakerMap := map[string]string{}
	if err := decodeObject(resp, &speakerMap); err != nil {
		p.logger.Warn(ctx, "Malformed speaker map response, leaving tags unresolved: %v", err)
		return map[string]string{}, nil
	}

	for tag, name := range speakerMap {
		if strings.TrimSpace(name) == "" {
			delete(speakerMap, tag)
		}
	}

	p.logger.Debug(ctx, "Resolved %d speaker tags", len(speakerMap))
	return speakerMap, nil
}

// applySpeakerMap rewrites every bracketed or bare occurrence of each
// resolved tag to the bracketed display name.
func applySpeakerMap(transcript string, speakerMap map[string]string) string {
	tags := make([]string, 0, len(speakerMap))
	for tag := range speakerMap {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		re := regexp.MustCompile(`\[?\b` + regexp.QuoteMeta(tag) + `\b\]?`)
		// Literal replacement: a model-returned name may contain "$".
		transcript = re.ReplaceAllLiteralString(transcript, "["+speakerMap[tag]+"]")
	}

	return transcript
}
