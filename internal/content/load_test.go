package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const capitalsYAML = `name: capitals
type: default
data:
  question_prefix: "Capital of "
items:
  - id: france
    question: France
    answers: [Paris]
  - id: peru
    question: Peru
    answers: [Lima]
`

func TestLoadFileDefault(t *testing.T) {
	path := writeFile(t, t.TempDir(), "capitals.yaml", capitalsYAML)

	model, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "capitals", model.Name)
	assert.Equal(t, TypeDefault, model.Type)
	require.Len(t, model.Questions, 2)
	assert.Equal(t, "france", model.Questions[0].Name)
	assert.Contains(t, string(model.Config), "Capital of ")
}

func TestLoadFileNumericRange(t *testing.T) {
	path := writeFile(t, t.TempDir(), "areas.yaml", `name: areas
type: numeric_range
data:
  question_prefix: "Area of "
  range: 0.2
items:
  - id: france
    question: France (km2)
    answer: 643801
`)

	model, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, TypeNumericRange, model.Type)
	require.Len(t, model.Questions, 1)
}

func TestLoadFileVocab(t *testing.T) {
	path := writeFile(t, t.TempDir(), "words.yaml", `name: words
type: vocab
items:
  - id: haus
    word: Haus
    definition: a building for living in
    example: Das Haus ist alt.
    translations: [house, home]
`)

	model, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, TypeVocab, model.Type)
	require.Len(t, model.Questions, 1)
	assert.Equal(t, "haus", model.Questions[0].Name)
}

func TestLoadFileUnion(t *testing.T) {
	path := writeFile(t, t.TempDir(), "all.yaml", `name: all-geography
type: union
data:
  sets: [capitals, areas]
`)

	model, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, TypeUnion, model.Type)
	assert.Empty(t, model.Questions)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", "name: x\ntype: trivia\n"},
		{"missing name", "type: default\n"},
		{"item without id", "name: x\ntype: default\nitems:\n  - question: Q\n    answers: [a]\n"},
		{"item without answers", "name: x\ntype: default\nitems:\n  - id: q1\n    question: Q\n"},
		{"union without members", "name: x\ntype: union\ndata: {}\n"},
		{"duplicate ids", "name: x\ntype: default\nitems:\n  - id: q1\n    question: A\n    answers: [a]\n  - id: q1\n    question: B\n    answers: [b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yaml", tt.body)
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "capitals.yaml", capitalsYAML)
	writeFile(t, dir, "broken.yaml", "name: x\ntype: nope\n")
	writeFile(t, dir, "notes.txt", "not a set file")

	models, errs := LoadDir(dir)
	require.Len(t, models, 1)
	assert.Equal(t, "capitals", models[0].Name)
	assert.Len(t, errs, 1)
}
