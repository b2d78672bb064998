package keywords

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jnxjent/gijiro3/internal/logger"
)

func newTestRepo(t *testing.T) (Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.json")
	repo, err := NewRepository(path, logger.New("error"))
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	return repo, path
}

func TestRepositoryStartsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	if rules := repo.List(context.Background()); len(rules) != 0 {
		t.Errorf("List() = %d rules, want 0", len(rules))
	}
}

func TestRepositoryAddPersists(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)

	rule, err := repo.Add(ctx, "ぎじろく", []string{"議事禄"}, "議事録")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if rule.ID == "" {
		t.Error("Add() assigned no id")
	}

	// A fresh repository over the same file sees the mutation.
	reloaded, err := NewRepository(path, logger.New("error"))
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	rules := reloaded.List(ctx)
	if len(rules) != 1 {
		t.Fatalf("reloaded List() = %d rules, want 1", len(rules))
	}
	if rules[0].Canonical != "議事録" {
		t.Errorf("reloaded canonical = %q, want 議事録", rules[0].Canonical)
	}
}

func TestRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	rule, err := repo.Add(ctx, "さとう", nil, "佐藤")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := repo.Update(ctx, rule.ID, "さとう", []string{"砂糖"}, "佐藤"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, ok := repo.Get(ctx, rule.ID)
	if !ok {
		t.Fatal("Get() rule missing after update")
	}
	if len(got.WrongExamples) != 1 || got.WrongExamples[0] != "砂糖" {
		t.Errorf("WrongExamples = %v after update", got.WrongExamples)
	}

	if err := repo.Delete(ctx, rule.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := repo.Get(ctx, rule.ID); ok {
		t.Error("Get() found rule after delete")
	}

	if err := repo.Update(ctx, "missing-id", "x", nil, "y"); err == nil {
		t.Error("Update() expected error for unknown id")
	}
	if err := repo.Delete(ctx, "missing-id"); err == nil {
		t.Error("Delete() expected error for unknown id")
	}
}

func TestRepositoryReload(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)

	if _, err := repo.Add(ctx, "a", nil, "A"); err != nil {
		t.Fatal(err)
	}

	// External edit is invisible until an explicit Reload.
	content := `[{"id":"x","reading":"b","wrong_examples":[],"keyword":"B"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if rules := repo.List(ctx); len(rules) != 1 || rules[0].Canonical != "A" {
		t.Errorf("List() before Reload = %+v, want cached rule A", rules)
	}

	if err := repo.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if rules := repo.List(ctx); len(rules) != 1 || rules[0].Canonical != "B" {
		t.Errorf("List() after Reload = %+v, want rule B", rules)
	}
}
