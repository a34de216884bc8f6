// Package quiz holds the in-memory practice view over the question
// store: questions grouped into sets, union sets expanded, runners built
// from stored payloads, and the selection strategies that decide what to
// drill next.
package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"quizdrill/internal/content"
	"quizdrill/internal/store"
)

func unmarshalUnion(data []byte, cfg *content.UnionConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// Item is one loaded question with its runner and cached history.
type Item struct {
	Question store.Question
	Runner   content.Runner
	Answers  []store.Answer
}

// Practiced reports whether the question has ever been answered.
func (it *Item) Practiced() bool {
	return len(it.Answers) > 0
}

// LastAnswer returns the most recent answer, or nil.
func (it *Item) LastAnswer() *store.Answer {
	if len(it.Answers) == 0 {
		return nil
	}
	return &it.Answers[len(it.Answers)-1]
}

// Service is the loaded practice state. It is not safe for concurrent
// use; the drill UI drives it from a single goroutine.
type Service struct {
	store *store.Store
	rng   *rand.Rand

	items map[int64]*Item
	sets  map[string][]int64
}

// NewService loads all questions, answers and sets from the store and
// resolves union sets. rng drives the random selection strategies.
func NewService(ctx context.Context, st *store.Store, rng *rand.Rand) (*Service, error) {
	s := &Service{
		store: st,
		rng:   rng,
		items: make(map[int64]*Item),
		sets:  make(map[string][]int64),
	}

	sets, err := st.AllSets(ctx)
	if err != nil {
		return nil, err
	}
	setRows := make(map[string]store.QuestionSet, len(sets))
	for _, qs := range sets {
		setRows[qs.Name] = qs
	}

	questions, err := st.AllQuestions(ctx)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		qs, ok := setRows[q.Set]
		if !ok {
			return nil, fmt.Errorf("question %s/%s references unknown set", q.Set, q.Name)
		}
		runner, err := content.BuildRunner(qs.SetType, qs.Data, q.Data)
		if err != nil {
			return nil, fmt.Errorf("build runner for %s/%s: %w", q.Set, q.Name, err)
		}
		s.items[q.ID] = &Item{Question: q, Runner: runner}
		s.sets[q.Set] = append(s.sets[q.Set], q.ID)
	}

	answers, err := st.AllAnswers(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		if it, ok := s.items[a.QuestionID]; ok {
			it.Answers = append(it.Answers, a)
		}
	}

	if err := s.resolveUnions(setRows); err != nil {
		return nil, err
	}

	return s, nil
}

// resolveUnions expands every union set into the ids of its member sets.
// Unions may nest; cycles are rejected.
func (s *Service) resolveUnions(setRows map[string]store.QuestionSet) error {
	var expand func(name string, trail map[string]bool) ([]int64, error)
	expand = func(name string, trail map[string]bool) ([]int64, error) {
		qs, ok := setRows[name]
		if !ok {
			return nil, fmt.Errorf("union member %s: %w", name, store.ErrNotFound)
		}
		if qs.SetType != content.TypeUnion {
			return s.sets[name], nil
		}
		if trail[name] {
			return nil, fmt.Errorf("union cycle through %s", name)
		}
		trail[name] = true
		defer delete(trail, name)

		var cfg content.UnionConfig
		if err := unmarshalUnion(qs.Data, &cfg); err != nil {
			return nil, fmt.Errorf("union %s: %w", name, err)
		}

		var ids []int64
		seen := make(map[int64]bool)
		for _, member := range cfg.Sets {
			memberIDs, err := expand(member, trail)
			if err != nil {
				return nil, err
			}
			for _, id := range memberIDs {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
		return ids, nil
	}

	for name, qs := range setRows {
		if qs.SetType != content.TypeUnion {
			continue
		}
		ids, err := expand(name, make(map[string]bool))
		if err != nil {
			return err
		}
		s.sets[name] = ids
	}
	return nil
}

// Sets returns all set names in sorted order.
func (s *Service) Sets() []string {
	names := make([]string, 0, len(s.sets))
	for name := range s.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetSize returns the number of questions in the set under the filter.
func (s *Service) SetSize(set string, filter Filter) int {
	return len(s.filtered(set, filter))
}

// Get returns the item for a question id, or nil.
func (s *Service) Get(id int64) *Item {
	return s.items[id]
}

// AddAnswer records the answer in the store and refreshes the cached
// question row and history.
func (s *Service) AddAnswer(ctx context.Context, id int64, correct bool) error {
	it, ok := s.items[id]
	if !ok {
		return fmt.Errorf("question %d: %w", id, store.ErrNotFound)
	}

	a, err := s.store.RecordAnswer(ctx, id, correct, time.Now())
	if err != nil {
		return err
	}

	q, err := s.store.GetQuestionByID(ctx, id)
	if err != nil {
		return err
	}
	it.Question = *q
	it.Answers = append(it.Answers, *a)
	return nil
}
