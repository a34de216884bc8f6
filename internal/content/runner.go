package content

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of checking one typed answer.
type Result struct {
	Correct  bool
	Feedback string
}

// Runner presents a stored question and judges a typed answer.
type Runner interface {
	// Prompt returns the question text shown to the user.
	Prompt() string

	// Check judges the input. The feedback is shown whether or not the
	// answer was accepted.
	Check(input string) Result

	// Validate reports why input cannot be submitted yet, or nil.
	Validate(input string) error
}

// BuildRunner constructs the runner for a question from its set's type
// and config plus the question's own payload.
func BuildRunner(setType string, config, data []byte) (Runner, error) {
	switch setType {
	case TypeDefault:
		var cfg DefaultConfig
		if err := yaml.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("parse default config: %w", err)
		}
		var q DefaultQuestion
		if err := yaml.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("parse default question: %w", err)
		}
		return &defaultRunner{cfg: cfg, q: q}, nil

	case TypeNumericRange:
		var cfg NumericRangeConfig
		if err := yaml.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("parse numeric_range config: %w", err)
		}
		var q NumericRangeQuestion
		if err := yaml.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("parse numeric_range question: %w", err)
		}
		if q.Range == 0 {
			q.Range = cfg.Range
		}
		return &numericRunner{cfg: cfg, q: q}, nil

	case TypeVocab:
		var q Word
		if err := yaml.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("parse vocab question: %w", err)
		}
		return &vocabRunner{q: q}, nil

	case TypeUnion:
		return nil, fmt.Errorf("union sets have no questions of their own")

	default:
		return nil, fmt.Errorf("unknown set type %q", setType)
	}
}

// defaultRunner accepts any of the listed answers, case-insensitively.
type defaultRunner struct {
	cfg DefaultConfig
	q   DefaultQuestion
}

func (r *defaultRunner) Prompt() string {
	return fmt.Sprintf("%s%s?", r.cfg.QuestionPrefix, r.q.Question)
}

func (r *defaultRunner) Check(input string) Result {
	for _, a := range r.q.Answers {
		if strings.EqualFold(strings.TrimSpace(input), a) {
			return Result{Correct: true, Feedback: "Correct!"}
		}
	}
	return Result{Feedback: fmt.Sprintf("Wrong. The answer is %q.", r.q.Answers[0])}
}

func (r *defaultRunner) Validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("answer is empty")
	}
	return nil
}

// numericRunner accepts any value within the relative tolerance of the
// exact answer. Input may carry an SI magnitude suffix.
type numericRunner struct {
	cfg NumericRangeConfig
	q   NumericRangeQuestion
}

func (r *numericRunner) Prompt() string {
	return fmt.Sprintf("%s%s?", r.cfg.QuestionPrefix, r.q.Question)
}

func (r *numericRunner) bounds() (int64, int64) {
	lo := int64(float64(r.q.Answer) * (1 - r.q.Range))
	hi := int64(float64(r.q.Answer) * (1 + r.q.Range))
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (r *numericRunner) Check(input string) Result {
	n, err := ParseSI(strings.TrimSpace(input))
	if err != nil {
		return Result{Feedback: fmt.Sprintf("Unparseable answer: %v", err)}
	}

	lo, hi := r.bounds()
	bound := fmt.Sprintf("[%s <= %s <= %s]",
		humanize.Comma(lo), humanize.Comma(r.q.Answer), humanize.Comma(hi))
	if lo <= n && n <= hi {
		return Result{Correct: true, Feedback: "Within accepted bounds! " + bound}
	}
	return Result{Feedback: "Wrong. Accepted bounds: " + bound}
}

func (r *numericRunner) Validate(input string) error {
	_, err := ParseSI(strings.TrimSpace(input))
	return err
}

// vocabRunner asks for a translation; any listed translation is
// accepted. The feedback always carries the definition and example so
// the word is reinforced either way.
type vocabRunner struct {
	q Word
}

func (r *vocabRunner) Prompt() string {
	return fmt.Sprintf("Translation of '%s':", r.q.Word)
}

func (r *vocabRunner) Check(input string) Result {
	correct := false
	for _, tr := range r.q.Translations {
		if strings.TrimSpace(input) == tr {
			correct = true
			break
		}
	}

	var b strings.Builder
	if correct {
		b.WriteString("Valid translation.")
	} else {
		b.WriteString("Invalid translation. Accepted: ")
		b.WriteString(strings.Join(r.q.Translations, ", "))
	}
	if r.q.Definition != "" {
		fmt.Fprintf(&b, "\nDefinition: %s", r.q.Definition)
	}
	if r.q.Example != "" {
		fmt.Fprintf(&b, "\nExample: %s", r.q.Example)
	}
	return Result{Correct: correct, Feedback: b.String()}
}

func (r *vocabRunner) Validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("answer is empty")
	}
	return nil
}
