package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := yaml.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestDefaultRunner(t *testing.T) {
	cfg := marshal(t, DefaultConfig{QuestionPrefix: "Capital of "})
	data := marshal(t, DefaultQuestion{
		ID:       "france",
		Question: "France",
		Answers:  []string{"Paris"},
	})

	r, err := BuildRunner(TypeDefault, cfg, data)
	require.NoError(t, err)

	assert.Equal(t, "Capital of France?", r.Prompt())
	assert.True(t, r.Check("Paris").Correct)
	assert.True(t, r.Check("paris").Correct, "answers are case-insensitive")
	assert.True(t, r.Check("  Paris ").Correct, "surrounding whitespace is ignored")

	res := r.Check("Lyon")
	assert.False(t, res.Correct)
	assert.Contains(t, res.Feedback, "Paris")

	assert.Error(t, r.Validate("   "))
	assert.NoError(t, r.Validate("Paris"))
}

func TestNumericRunner(t *testing.T) {
	cfg := marshal(t, NumericRangeConfig{QuestionPrefix: "Population of ", Range: 0.1})
	data := marshal(t, NumericRangeQuestion{
		ID:       "france",
		Question: "France",
		Answer:   68_000_000,
	})

	r, err := BuildRunner(TypeNumericRange, cfg, data)
	require.NoError(t, err)

	assert.Equal(t, "Population of France?", r.Prompt())

	// Set-level tolerance applies: 10% of 68M.
	assert.True(t, r.Check("68000000").Correct)
	assert.True(t, r.Check("65m").Correct, "SI suffix accepted")
	assert.True(t, r.Check("70M").Correct)
	assert.False(t, r.Check("100m").Correct)

	res := r.Check("1")
	assert.False(t, res.Correct)
	assert.Contains(t, res.Feedback, "68,000,000")

	assert.Error(t, r.Validate("lots"))
	assert.NoError(t, r.Validate("1.5k"))
}

func TestNumericRunnerQuestionRangeOverridesConfig(t *testing.T) {
	cfg := marshal(t, NumericRangeConfig{Range: 0.5})
	data := marshal(t, NumericRangeQuestion{
		ID:       "exact",
		Question: "6*7",
		Answer:   42,
		Range:    0, // falls back to config range
	})

	r, err := BuildRunner(TypeNumericRange, cfg, data)
	require.NoError(t, err)
	assert.True(t, r.Check("30").Correct, "config tolerance 50% accepts 30")

	data = marshal(t, NumericRangeQuestion{
		ID:       "loose",
		Question: "6*7",
		Answer:   42,
		Range:    0.01,
	})
	r, err = BuildRunner(TypeNumericRange, cfg, data)
	require.NoError(t, err)
	assert.False(t, r.Check("30").Correct, "question tolerance 1% rejects 30")
	assert.True(t, r.Check("42").Correct)
}

func TestVocabRunner(t *testing.T) {
	data := marshal(t, Word{
		ID:           "haus",
		Word:         "Haus",
		Definition:   "a building for living in",
		Example:      "Das Haus ist alt.",
		Translations: []string{"house", "home"},
	})

	r, err := BuildRunner(TypeVocab, nil, data)
	require.NoError(t, err)

	assert.Equal(t, "Translation of 'Haus':", r.Prompt())
	assert.True(t, r.Check("house").Correct)
	assert.True(t, r.Check("home").Correct)

	res := r.Check("hut")
	assert.False(t, res.Correct)
	assert.Contains(t, res.Feedback, "house")
	assert.Contains(t, res.Feedback, "a building for living in")
}

func TestBuildRunnerRejectsUnionAndUnknown(t *testing.T) {
	_, err := BuildRunner(TypeUnion, nil, nil)
	assert.Error(t, err)

	_, err = BuildRunner("trivia", nil, nil)
	assert.Error(t, err)
}
