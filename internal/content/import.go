package content

import (
	"context"
	"errors"
	"fmt"

	"quizdrill/internal/store"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Sets      int // set rows created
	Questions int // questions created
	Skipped   int // questions already present
}

// Importer writes parsed set models into the store. Imports are
// idempotent: existing sets and questions are left untouched.
type Importer struct {
	Store *store.Store
}

// Import inserts the model's set row and member questions.
func (im *Importer) Import(ctx context.Context, model SetModel) (ImportStats, error) {
	var stats ImportStats

	if _, err := im.Store.GetSet(ctx, model.Name); errors.Is(err, store.ErrNotFound) {
		if _, err := im.Store.EnsureSet(ctx, model.Name, model.Type, model.Config); err != nil {
			return stats, fmt.Errorf("ensure set %s: %w", model.Name, err)
		}
		stats.Sets++
	} else if err != nil {
		return stats, err
	}

	for _, q := range model.Questions {
		if _, err := im.Store.GetQuestion(ctx, model.Name, q.Name); err == nil {
			stats.Skipped++
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return stats, err
		}
		if _, err := im.Store.UpsertQuestion(ctx, model.Name, q.Name, q.Data); err != nil {
			return stats, fmt.Errorf("import question %s/%s: %w", model.Name, q.Name, err)
		}
		stats.Questions++
	}

	return stats, nil
}

// ImportAll imports a batch of models, accumulating stats.
func (im *Importer) ImportAll(ctx context.Context, models []SetModel) (ImportStats, error) {
	var total ImportStats
	for _, m := range models {
		stats, err := im.Import(ctx, m)
		total.Sets += stats.Sets
		total.Questions += stats.Questions
		total.Skipped += stats.Skipped
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
