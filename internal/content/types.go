// Package content loads question-set definition files and builds the
// interactive runners for stored questions. A set file is a YAML
// document with a name, a set type and the type's payload; the loader
// turns it into store rows (one question_sets row plus one questions row
// per item) and the builders reverse the process at drill time.
package content

// Set type names as stored in question_sets.set_type.
const (
	TypeDefault      = "default"
	TypeNumericRange = "numeric_range"
	TypeVocab        = "vocab"
	TypeUnion        = "union"
)

// SetModel is a parsed set file, ready for import: the set row payload
// plus one payload per member question.
type SetModel struct {
	Name      string
	Type      string
	Config    []byte
	Questions []QuestionModel
}

// QuestionModel is one importable question: its unique name within the
// set and its serialized payload.
type QuestionModel struct {
	Name string
	Data []byte
}

// header is the discriminator common to every set file.
type header struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required,oneof=default numeric_range vocab union"`
}

// DefaultConfig is the set payload for free-text question sets.
type DefaultConfig struct {
	QuestionPrefix string `yaml:"question_prefix"`
}

// DefaultQuestion is a free-text question with accepted answers.
type DefaultQuestion struct {
	ID       string   `yaml:"id" validate:"required"`
	Question string   `yaml:"question" validate:"required"`
	Answers  []string `yaml:"answers" validate:"required,min=1"`
}

// NumericRangeConfig is the set payload for numeric questions answered
// within a relative tolerance.
type NumericRangeConfig struct {
	QuestionPrefix string  `yaml:"question_prefix"`
	Range          float64 `yaml:"range" validate:"gte=0,lt=1"`
}

// NumericRangeQuestion is a numeric question. Range, when non-zero,
// overrides the set-level tolerance.
type NumericRangeQuestion struct {
	ID       string  `yaml:"id" validate:"required"`
	Question string  `yaml:"question" validate:"required"`
	Answer   int64   `yaml:"answer"`
	Range    float64 `yaml:"range" validate:"gte=0,lt=1"`
}

// VocabConfig is the (empty) set payload for vocabulary sets.
type VocabConfig struct{}

// Word is a vocabulary question.
type Word struct {
	ID           string   `yaml:"id" validate:"required"`
	Word         string   `yaml:"word" validate:"required"`
	Definition   string   `yaml:"definition"`
	Example      string   `yaml:"example"`
	Translations []string `yaml:"translations" validate:"required,min=1"`
}

// UnionConfig is the set payload for union sets: a union has no
// questions of its own, only member sets.
type UnionConfig struct {
	Sets []string `yaml:"sets" validate:"required,min=1"`
}
