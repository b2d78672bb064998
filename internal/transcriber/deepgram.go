package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/jnxjent/gijiro3/internal/logger"
)

type implTranscriber struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Transcriber backed by the Deepgram prerecorded API with
// language auto-detection, diarization and utterance splitting enabled.
func New(apiKey, baseURL, model string, log logger.Logger) Transcriber {
	return &implTranscriber{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 10 * time.Minute},
		logger:  log,
	}
}

type utteranceResult struct {
	Speaker    int    `json:"speaker"`
	Transcript string `json:"transcript"`
}

type transcriptionResponse struct {
	Results struct {
		Utterances []utteranceResult `json:"utterances"`
	} `json:"results"`
}

// Transcribe sends one audio buffer and returns the ordered utterance list.
func (t *implTranscriber) Transcribe(ctx context.Context, audio []byte, mimetype string) ([]Utterance, error) {
	q := url.Values{}
	q.Set("model", t.model)
	q.Set("detect_language", "true")
	q.Set("diarize", "true")
	q.Set("utterances", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"?"+q.Encode(), bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+t.apiKey)
	req.Header.Set("Content-Type", mimetype)

	t.logger.Debug(ctx, "Transcribing %d bytes (%s)", len(audio), mimetype)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription service returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse transcription response: %w", err)
	}

	utterances := make([]Utterance, 0, len(parsed.Results.Utterances))
	for _, u := range parsed.Results.Utterances {
		utterances = append(utterances, Utterance{
			Speaker:    u.Speaker,
			Transcript: u.Transcript,
		})
	}

	return utterances, nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
