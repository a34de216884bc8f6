package quiz

import (
	"fmt"
	"math"
	"sort"

	"quizdrill/internal/store"
)

// Filter narrows a set to the questions eligible for selection.
type Filter int

const (
	// All selects from every question in the set.
	All Filter = iota

	// Practiced selects only from questions with at least one answer.
	Practiced
)

func (f Filter) String() string {
	switch f {
	case Practiced:
		return "Practiced"
	default:
		return "All"
	}
}

// Method is a ranking strategy for picking questions out of a set.
type Method int

const (
	// Bottom picks the questions with the lowest success probability.
	Bottom Method = iota

	// WeightedRandom samples without replacement, weighting weak
	// questions higher: weight = (1 - p + 0.05)^1.5.
	WeightedRandom

	// UniformRandom samples uniformly without replacement.
	UniformRandom

	// OldestAnswer picks the questions whose last answer is oldest;
	// never-answered questions come first.
	OldestAnswer
)

func (m Method) String() string {
	switch m {
	case Bottom:
		return "Bottom"
	case WeightedRandom:
		return "Weighted random"
	case UniformRandom:
		return "Uniform random"
	case OldestAnswer:
		return "Oldest answer"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods lists every selection method in menu order.
func Methods() []Method {
	return []Method{Bottom, WeightedRandom, UniformRandom, OldestAnswer}
}

// ParseMethod resolves a method from its config/flag name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "bottom":
		return Bottom, nil
	case "weighted", "weighted-random":
		return WeightedRandom, nil
	case "uniform", "uniform-random":
		return UniformRandom, nil
	case "oldest", "oldest-answer":
		return OldestAnswer, nil
	default:
		return 0, fmt.Errorf("unknown selection method %q", name)
	}
}

// filtered returns the eligible question ids of a set in stable order.
func (s *Service) filtered(set string, filter Filter) []int64 {
	ids := s.sets[set]
	if filter == All {
		out := make([]int64, len(ids))
		copy(out, ids)
		return out
	}

	var out []int64
	for _, id := range ids {
		if s.items[id].Practiced() {
			out = append(out, id)
		}
	}
	return out
}

// Select picks up to num questions from the set using the given method.
// num clamps to the filtered set size. Returns ErrNotFound (wrapped) for
// an unknown set.
func (s *Service) Select(set string, method Method, num int, filter Filter) ([]int64, error) {
	if _, ok := s.sets[set]; !ok {
		return nil, fmt.Errorf("unknown set %q: %w", set, store.ErrNotFound)
	}

	ids := s.filtered(set, filter)
	if num > len(ids) {
		num = len(ids)
	}
	if num < 0 {
		num = 0
	}

	switch method {
	case Bottom:
		return s.bottom(ids, num), nil
	case WeightedRandom:
		return s.weightedRandom(ids, num), nil
	case UniformRandom:
		return s.uniformRandom(ids, num), nil
	case OldestAnswer:
		return s.oldestAnswer(ids, num), nil
	default:
		return nil, fmt.Errorf("unknown selection method %v", method)
	}
}

func (s *Service) bottom(ids []int64, num int) []int64 {
	sort.SliceStable(ids, func(i, j int) bool {
		return s.items[ids[i]].Question.Probability < s.items[ids[j]].Question.Probability
	})
	return ids[:num]
}

func (s *Service) uniformRandom(ids []int64, num int) []int64 {
	s.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids[:num]
}

// weightedRandom draws num questions without replacement, each draw
// proportional to (1 - probability + 0.05)^1.5, so weak questions
// surface more often but strong ones still appear.
func (s *Service) weightedRandom(ids []int64, num int) []int64 {
	chosen := make(map[int64]bool, num)
	var out []int64

	for len(out) < num {
		total := 0.0
		type cumulative struct {
			id int64
			v  float64
		}
		stack := make([]cumulative, 0, len(ids))
		for _, id := range ids {
			if chosen[id] {
				continue
			}
			p := s.items[id].Question.Probability
			total += weight(p)
			stack = append(stack, cumulative{id: id, v: total})
		}

		x := s.rng.Float64() * total
		for _, c := range stack {
			if c.v >= x {
				chosen[c.id] = true
				out = append(out, c.id)
				break
			}
		}
	}
	return out
}

func weight(probability float64) float64 {
	return math.Pow(1-probability+0.05, 1.5)
}

func (s *Service) oldestAnswer(ids []int64, num int) []int64 {
	sort.SliceStable(ids, func(i, j int) bool {
		ai, aj := s.items[ids[i]].LastAnswer(), s.items[ids[j]].LastAnswer()
		switch {
		case ai == nil && aj == nil:
			return ids[i] < ids[j]
		case ai == nil:
			return true
		case aj == nil:
			return false
		default:
			return ai.Time.Before(aj.Time)
		}
	})
	return ids[:num]
}
