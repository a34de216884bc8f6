package store

const schema = `
-- Questions track per-item practice state. A question belongs to exactly
-- one question set and is unique by (question_set, name) within it.
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_set TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    last_answered_at DATETIME,
    probability REAL NOT NULL,
    num_correct INTEGER NOT NULL,
    num_incorrect INTEGER NOT NULL,
    data BLOB NOT NULL,

    UNIQUE(question_set, name)
);

-- Answers are an append-only log. Rows are never updated or reordered;
-- question counters are maintained in the same transaction as the insert.
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL,
    time DATETIME NOT NULL,
    correct INTEGER NOT NULL,

    FOREIGN KEY(question_id) REFERENCES questions(id)
);

CREATE INDEX IF NOT EXISTS idx_answers_question_time ON answers(question_id, time);

-- Question sets are first-class named entities. set_type selects the
-- runner/builder for member questions and data carries its configuration.
CREATE TABLE IF NOT EXISTS question_sets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    set_type TEXT NOT NULL,
    data BLOB NOT NULL
);
`
