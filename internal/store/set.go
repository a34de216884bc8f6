package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// QuestionSet is a named grouping of questions. SetType selects the
// runner built for member questions; Data carries the type's
// configuration payload (serialized by the content package).
type QuestionSet struct {
	ID      int64
	Name    string
	SetType string
	Data    []byte
}

// EnsureSet returns the set with the given name, creating it if absent.
// An existing row is returned unchanged; use ReplaceSetData to update the
// payload. Racing creators resolve to the first committed row.
func (s *Store) EnsureSet(ctx context.Context, name, setType string, data []byte) (*QuestionSet, error) {
	if qs, err := s.GetSet(ctx, name); err == nil {
		return qs, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question_sets (name, set_type, data)
		VALUES (?, ?, ?)
		RETURNING id
	`, name, setType, data).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetSet(ctx, name)
		}
		return nil, fmt.Errorf("insert set %s: %w", name, err)
	}

	return &QuestionSet{ID: id, Name: name, SetType: setType, Data: data}, nil
}

// GetSet retrieves a set by name. Returns ErrNotFound if absent.
func (s *Store) GetSet(ctx context.Context, name string) (*QuestionSet, error) {
	var qs QuestionSet
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, set_type, data
		FROM question_sets WHERE name = ?
	`, name).Scan(&qs.ID, &qs.Name, &qs.SetType, &qs.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("set %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get set %s: %w", name, err)
	}
	return &qs, nil
}

// AllSets returns every stored question set ordered by name.
func (s *Store) AllSets(ctx context.Context) ([]QuestionSet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, set_type, data
		FROM question_sets ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("all sets: %w", err)
	}
	defer rows.Close()

	var sets []QuestionSet
	for rows.Next() {
		var qs QuestionSet
		if err := rows.Scan(&qs.ID, &qs.Name, &qs.SetType, &qs.Data); err != nil {
			return nil, fmt.Errorf("scan set row: %w", err)
		}
		sets = append(sets, qs)
	}
	return sets, rows.Err()
}

// ReplaceSetData overwrites the configuration payload of an existing set.
// Returns ErrNotFound if the set does not exist. Name and type are
// immutable once created.
func (s *Store) ReplaceSetData(ctx context.Context, name string, data []byte) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE question_sets SET data = ? WHERE name = ?
	`, data, name)
	if err != nil {
		return fmt.Errorf("replace data for set %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set %s: %w", name, ErrNotFound)
	}
	return nil
}
