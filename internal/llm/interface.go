package llm

import "context"

// Generator is the text-generation collaborator. Requests are chat-style:
// a system persona plus a user prompt carrying the task and payload. The
// response is a single completion; callers parse it as free text or JSON.
type Generator interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
