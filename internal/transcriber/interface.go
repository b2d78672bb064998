package transcriber

import "context"

// Utterance is one diarized speech turn. Speaker is a session-local
// identifier assigned by the service (0, 1, ...); it is not guaranteed
// to be stable across independently transcribed chunks.
type Utterance struct {
	Speaker    int
	Transcript string
}

// Transcriber converts one audio payload into diarized utterances.
// The core treats the service as a black box and does not interpret
// per-provider confidence scores.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimetype string) ([]Utterance, error)
}
