package store

import (
	"path/filepath"
	"testing"
)

// openTestStore opens a file-backed store in a per-test temp dir.
// A file (not :memory:) keeps the DB shared across pooled connections.
func openTestStore(t *testing.T, scorer ScoreFunc) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), scorer)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t, nil)
	if s.DB() == nil {
		t.Fatal("expected non-nil sql.DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t, nil)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaIdempotent(t *testing.T) {
	s := openTestStore(t, nil)
	// Re-applying the schema against an existing database must not fail.
	if _, err := s.DB().Exec(schema); err != nil {
		t.Fatalf("reapply schema: %v", err)
	}
}
