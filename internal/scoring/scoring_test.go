package scoring

import (
	"math"
	"testing"

	"quizdrill/internal/store"
)

func answers(seq ...bool) []store.Answer {
	out := make([]store.Answer, len(seq))
	for i, c := range seq {
		out[i] = store.Answer{Correct: c}
	}
	return out
}

func TestDecayFirstAnswer(t *testing.T) {
	score := Decay(DefaultDecay)

	// No history: total=1, correct=1 -> (1+1)/(1+2)
	got := score(store.Question{}, nil, true)
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("correct: got %v, want %v", got, want)
	}

	got = score(store.Question{}, nil, false)
	want = 1.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("wrong: got %v, want %v", got, want)
	}
}

func TestDecayReplaysHistory(t *testing.T) {
	score := Decay(0.9)

	// Two correct answers: total = 1*0.9+1 = 1.9, correct = 1.9
	// -> (1.9+1)/(1.9+2) = 2.9/3.9
	got := score(store.Question{}, answers(true), true)
	want := 2.9 / 3.9
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecayRecencyWeighting(t *testing.T) {
	score := Decay(0.9)

	// Same counts, different order: a recent wrong answer must weigh
	// more than an old one.
	recentWrong := score(store.Question{}, answers(true, true), false)
	oldWrong := score(store.Question{}, answers(false, true), true)
	if recentWrong >= oldWrong {
		t.Errorf("recent wrong %v should score below old wrong %v", recentWrong, oldWrong)
	}
}

func TestDecayBounded(t *testing.T) {
	score := Decay(0.9)

	seqs := [][]bool{
		{},
		{true, true, true, true, true, true, true, true},
		{false, false, false, false, false, false, false},
		{true, false, true, false, true},
	}
	for _, seq := range seqs {
		for _, correct := range []bool{true, false} {
			got := score(store.Question{}, answers(seq...), correct)
			if got <= 0 || got >= 1 {
				t.Errorf("seq %v correct=%v: %v out of (0, 1)", seq, correct, got)
			}
		}
	}
}

func TestEwmaSteps(t *testing.T) {
	score := Ewma(0.8)

	tests := []struct {
		prob    float64
		correct bool
		want    float64
	}{
		{0.5, true, 0.6},
		{0.5, false, 0.4},
		{1.0, true, 1.0},
		{0.0, false, 0.0},
		{0.9, true, 0.92},
		{0.1, false, 0.08},
	}
	for _, tt := range tests {
		got := score(store.Question{Probability: tt.prob}, nil, tt.correct)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("prob=%v correct=%v: got %v, want %v", tt.prob, tt.correct, got, tt.want)
		}
	}
}

func TestFromName(t *testing.T) {
	if _, err := FromName("decay", 0); err != nil {
		t.Errorf("decay: %v", err)
	}
	if _, err := FromName("ewma", 0.7); err != nil {
		t.Errorf("ewma: %v", err)
	}
	if _, err := FromName("", 0); err != nil {
		t.Errorf("default: %v", err)
	}
	if _, err := FromName("fsrs", 0); err == nil {
		t.Error("expected error for unknown policy")
	}
}
