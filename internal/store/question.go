package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// NeutralProbability is the success probability assigned to a question
// that has never been answered.
const NeutralProbability = 0.5

// Question is one practiced item. It is unique by (Set, Name) and its
// counters and probability are mutated only through RecordAnswer.
type Question struct {
	ID             int64
	Set            string
	Name           string
	CreatedAt      time.Time
	LastAnsweredAt sql.NullTime
	Probability    float64
	NumCorrect     int
	NumIncorrect   int
	Data           []byte
}

const questionColumns = `id, question_set, name, created_at, last_answered_at, probability, num_correct, num_incorrect, data`

func scanQuestion(row interface{ Scan(...any) error }) (*Question, error) {
	var q Question
	err := row.Scan(
		&q.ID,
		&q.Set,
		&q.Name,
		&q.CreatedAt,
		&q.LastAnsweredAt,
		&q.Probability,
		&q.NumCorrect,
		&q.NumIncorrect,
		&q.Data,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpsertQuestion returns the question identified by (set, name), creating
// it with neutral defaults if it does not exist. When two callers race on
// the same key the first committed insert wins and the loser observes the
// winner's row. The returned row is never modified for an existing key.
func (s *Store) UpsertQuestion(ctx context.Context, set, name string, data []byte) (*Question, error) {
	if q, err := s.GetQuestion(ctx, set, name); err == nil {
		return q, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	q, err := s.insertQuestion(ctx, set, name, data)
	if err == nil {
		return q, nil
	}
	if !isUniqueViolation(err) {
		return nil, fmt.Errorf("insert question %s/%s: %w", set, name, err)
	}

	// Lost the race: a concurrent caller committed first. Observe its row.
	q, rerr := s.GetQuestion(ctx, set, name)
	if rerr != nil {
		return nil, fmt.Errorf("reread after conflict on %s/%s: %w", set, name, rerr)
	}
	return q, nil
}

// CreateQuestion inserts a new question with create-only semantics.
// It returns ErrConflict if (set, name) already exists.
func (s *Store) CreateQuestion(ctx context.Context, set, name string, data []byte) (*Question, error) {
	q, err := s.insertQuestion(ctx, set, name, data)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("question %s/%s: %w", set, name, ErrConflict)
		}
		return nil, fmt.Errorf("insert question %s/%s: %w", set, name, err)
	}
	return q, nil
}

func (s *Store) insertQuestion(ctx context.Context, set, name string, data []byte) (*Question, error) {
	now := utc(time.Now())
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (question_set, name, created_at, probability, num_correct, num_incorrect, data)
		VALUES (?, ?, ?, ?, 0, 0, ?)
		RETURNING id
	`, set, name, now, NeutralProbability, data).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Question{
		ID:          id,
		Set:         set,
		Name:        name,
		CreatedAt:   now,
		Probability: NeutralProbability,
		Data:        data,
	}, nil
}

// GetQuestion retrieves a question by its (set, name) key.
// Returns ErrNotFound if no such question exists.
func (s *Store) GetQuestion(ctx context.Context, set, name string) (*Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions WHERE question_set = ? AND name = ?
	`, set, name)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("question %s/%s: %w", set, name, ErrNotFound)
		}
		return nil, fmt.Errorf("get question %s/%s: %w", set, name, err)
	}
	return q, nil
}

// GetQuestionByID retrieves a question by its row id.
// Returns ErrNotFound if no such question exists.
func (s *Store) GetQuestionByID(ctx context.Context, id int64) (*Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions WHERE id = ?
	`, id)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// AllQuestions returns every stored question.
func (s *Store) AllQuestions(ctx context.Context) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("all questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// QuestionsInSet returns every question whose owning set is set, ordered by id.
func (s *Store) QuestionsInSet(ctx context.Context, set string) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions WHERE question_set = ? ORDER BY id
	`, set)
	if err != nil {
		return nil, fmt.Errorf("questions in set %s: %w", set, err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}
