package keywords

import "context"

// Rule maps a term's reading and known misrecognition variants to its
// canonical written form.
type Rule struct {
	ID            string   `json:"id"`
	Reading       string   `json:"reading"`
	WrongExamples []string `json:"wrong_examples"`
	Canonical     string   `json:"keyword"`
}

// Repository owns the keyword correction dictionary. The dictionary is
// loaded once and cached; mutations are persisted immediately and update
// the cache; Reload is an explicit operation, never automatic. All
// methods are safe for concurrent use.
type Repository interface {
	List(ctx context.Context) []Rule
	Get(ctx context.Context, id string) (Rule, bool)
	Add(ctx context.Context, reading string, wrongExamples []string, canonical string) (Rule, error)
	Update(ctx context.Context, id, reading string, wrongExamples []string, canonical string) error
	Delete(ctx context.Context, id string) error
	Reload(ctx context.Context) error
}
