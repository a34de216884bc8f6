package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Answer is one row of the append-only answer log.
type Answer struct {
	ID         int64
	QuestionID int64
	Time       time.Time
	Correct    bool
}

// RecordAnswer appends an answer and updates the parent question's
// counters, last_answered_at and probability in a single transaction, so
// the counters can never drift from the answer log. The new probability
// comes from the store's ScoreFunc; with a nil scorer the stored value is
// kept. Returns ErrNotFound if the question does not exist.
func (s *Store) RecordAnswer(ctx context.Context, questionID int64, correct bool, at time.Time) (*Answer, error) {
	at = utc(at)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin record answer: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions WHERE id = ?
	`, questionID)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("load question %d: %w", questionID, err)
	}

	newProb := q.Probability
	if s.scorer != nil {
		history, err := listAnswersTx(ctx, tx, questionID)
		if err != nil {
			return nil, err
		}
		newProb = s.scorer(*q, history, correct)
	}

	var answerID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO answers (question_id, time, correct)
		VALUES (?, ?, ?)
		RETURNING id
	`, questionID, at, correct).Scan(&answerID)
	if err != nil {
		return nil, fmt.Errorf("insert answer for question %d: %w", questionID, err)
	}

	cor, inc := 0, 1
	if correct {
		cor, inc = 1, 0
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE questions
		SET probability = ?,
		    last_answered_at = ?,
		    num_correct = num_correct + ?,
		    num_incorrect = num_incorrect + ?
		WHERE id = ?
	`, newProb, at, cor, inc, questionID)
	if err != nil {
		return nil, fmt.Errorf("update question %d counters: %w", questionID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit record answer: %w", err)
	}

	return &Answer{
		ID:         answerID,
		QuestionID: questionID,
		Time:       at,
		Correct:    correct,
	}, nil
}

// ListAnswers returns the full answer history for a question in
// ascending time order.
func (s *Store) ListAnswers(ctx context.Context, questionID int64) ([]Answer, error) {
	return listAnswers(ctx, s.db, questionID)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listAnswers(ctx context.Context, db querier, questionID int64) ([]Answer, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, question_id, time, correct
		FROM answers WHERE question_id = ?
		ORDER BY time ASC, id ASC
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers for question %d: %w", questionID, err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

func listAnswersTx(ctx context.Context, tx *sql.Tx, questionID int64) ([]Answer, error) {
	return listAnswers(ctx, tx, questionID)
}

// AllAnswers returns every answer in the log ordered by time.
func (s *Store) AllAnswers(ctx context.Context) ([]Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, time, correct
		FROM answers
		ORDER BY time ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("all answers: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

func scanAnswers(rows *sql.Rows) ([]Answer, error) {
	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Time, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// ResetSet deletes the answer history of every question in the set and
// returns the questions to their neutral state. Reports the number of
// answers deleted. The questions themselves and the set row survive.
func (s *Store) ResetSet(ctx context.Context, set string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin reset %s: %w", set, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM answers WHERE question_id IN (
			SELECT id FROM questions WHERE question_set = ?
		)
	`, set)
	if err != nil {
		return 0, fmt.Errorf("delete answers for set %s: %w", set, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE questions
		SET probability = ?, num_correct = 0, num_incorrect = 0, last_answered_at = NULL
		WHERE question_set = ?
	`, NeutralProbability, set)
	if err != nil {
		return 0, fmt.Errorf("reset questions for set %s: %w", set, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reset %s: %w", set, err)
	}
	return deleted, nil
}
