// Package scoring provides the probability update policies injected into
// the question store. The store calls the policy inside the RecordAnswer
// transaction; policies are pure functions of the question row, its
// answer history and the new answer.
package scoring

import (
	"fmt"

	"quizdrill/internal/store"
)

const (
	// DefaultDecay is the per-answer weight decay of the Decay policy.
	DefaultDecay = 0.9

	// DefaultEwmaRate is the retention factor of the Ewma policy.
	DefaultEwmaRate = 0.8
)

// Decay returns a policy that estimates the success probability as an
// exponentially weighted correctness ratio with Laplace smoothing:
// recent answers count more, and a question with no history sits at 1/2.
// The history is replayed on every call, so the estimate never drifts
// from the answer log.
func Decay(decay float64) store.ScoreFunc {
	return func(q store.Question, history []store.Answer, correct bool) float64 {
		var total, weightedCorrect float64
		step := func(c bool) {
			total = total*decay + 1
			weightedCorrect *= decay
			if c {
				weightedCorrect++
			}
		}
		for _, a := range history {
			step(a.Correct)
		}
		step(correct)
		return (weightedCorrect + 1) / (total + 2)
	}
}

// Ewma returns a policy that steps the stored probability toward 1 on a
// correct answer and toward 0 on a wrong one, clamped to [0, 1]. It only
// reads the stored value, never the history.
func Ewma(rate float64) store.ScoreFunc {
	return func(q store.Question, history []store.Answer, correct bool) float64 {
		if correct {
			return min(1, q.Probability*rate+(1-rate))
		}
		return max(0, q.Probability*rate)
	}
}

// FromName resolves a policy by its config name. A zero param selects the
// policy's default parameter.
func FromName(name string, param float64) (store.ScoreFunc, error) {
	switch name {
	case "", "decay":
		if param == 0 {
			param = DefaultDecay
		}
		return Decay(param), nil
	case "ewma":
		if param == 0 {
			param = DefaultEwmaRate
		}
		return Ewma(param), nil
	default:
		return nil, fmt.Errorf("unknown scoring policy %q", name)
	}
}
