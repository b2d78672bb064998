package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/jnxjent/gijiro3/internal/logger"
)

type implRepository struct {
	path   string
	logger logger.Logger

	mu    sync.RWMutex
	rules []Rule
}

// NewRepository creates a Repository backed by a JSON file. The dictionary
// is loaded once here; a missing file is treated as an empty dictionary.
func NewRepository(path string, log logger.Logger) (Repository, error) {
	r := &implRepository{
		path:   path,
		logger: log,
	}

	if err := r.Reload(context.Background()); err != nil {
		return nil, err
	}

	return r, nil
}

// Reload replaces the cached dictionary with the persisted contents.
func (r *implRepository) Reload(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.mu.Lock()
		r.rules = nil
		r.mu.Unlock()
		r.logger.Info(ctx, "Keyword store %s not found, starting empty", r.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read keyword store: %w", err)
	}

	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("parse keyword store: %w", err)
	}

	r.mu.Lock()
	r.rules = rules
	r.mu.Unlock()

	r.logger.Info(ctx, "Loaded %d keyword rules from %s", len(rules), r.path)
	return nil
}

// List returns a snapshot of the dictionary in rule order.
func (r *implRepository) List(ctx context.Context) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

func (r *implRepository) Get(ctx context.Context, id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, true
		}
	}
	return Rule{}, false
}

func (r *implRepository) Add(ctx context.Context, reading string, wrongExamples []string, canonical string) (Rule, error) {
	rule := Rule{
		ID:            uuid.NewString(),
		Reading:       reading,
		WrongExamples: wrongExamples,
		Canonical:     canonical,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule)
	if err := r.persistLocked(); err != nil {
		r.rules = r.rules[:len(r.rules)-1]
		return Rule{}, err
	}

	return rule, nil
}

func (r *implRepository) Update(ctx context.Context, id, reading string, wrongExamples []string, canonical string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.ID != id {
			continue
		}
		prev := r.rules[i]
		r.rules[i] = Rule{
			ID:            id,
			Reading:       reading,
			WrongExamples: wrongExamples,
			Canonical:     canonical,
		}
		if err := r.persistLocked(); err != nil {
			r.rules[i] = prev
			return err
		}
		return nil
	}

	return fmt.Errorf("keyword rule %s not found", id)
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.ID != id {
			continue
		}
		kept := make([]Rule, 0, len(r.rules)-1)
		kept = append(kept, r.rules[:i]...)
		kept = append(kept, r.rules[i+1:]...)
		prev := r.rules
		r.rules = kept
		if err := r.persistLocked(); err != nil {
			r.rules = prev
			return err
		}
		return nil
	}

	return fmt.Errorf("keyword rule %s not found", id)
}

func (r *implRepository) persistLocked() error {
	data, err := json.MarshalIndent(r.rules, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keyword store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create keyword store dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("write keyword store: %w", err)
	}

	return nil
}
