package drill

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"gopkg.in/yaml.v3"

	"quizdrill/internal/content"
	"quizdrill/internal/quiz"
	"quizdrill/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestModel(t *testing.T, questions []string) *Model {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	cfg, err := yaml.Marshal(content.DefaultConfig{})
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if _, err := s.EnsureSet(ctx, "capitals", content.TypeDefault, cfg); err != nil {
		t.Fatalf("ensure set: %v", err)
	}
	for _, qn := range questions {
		data, err := yaml.Marshal(content.DefaultQuestion{
			ID:       qn,
			Question: qn,
			Answers:  []string{qn},
		})
		if err != nil {
			t.Fatalf("marshal question: %v", err)
		}
		if _, err := s.UpsertQuestion(ctx, "capitals", qn, data); err != nil {
			t.Fatalf("upsert %s: %v", qn, err)
		}
	}

	rng := rand.New(rand.NewSource(42))
	svc, err := quiz.NewService(ctx, s, rng)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return New(svc, rng, Options{})
}

// drive applies a message and feeds any resulting drill message back in.
func drive(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	m, cmd := m.Update(msg)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case setChosenMsg, filterChosenMsg, methodChosenMsg, answerRecordedMsg:
			m, cmd = m.Update(out)
		default:
			return m
		}
	}
	return m
}

// toQuestion walks the model through set, filter, method and count
// selection with the defaults.
func toQuestion(t *testing.T, m *Model) *Model {
	t.Helper()
	m = drive(t, m, specialKey(tea.KeyEnter)) // set
	if m.phase != phasePickFilter {
		t.Fatalf("phase = %d, want pick filter", m.phase)
	}
	m = drive(t, m, specialKey(tea.KeyEnter)) // filter: All
	if m.phase != phasePickMethod {
		t.Fatalf("phase = %d, want pick method", m.phase)
	}
	m = drive(t, m, specialKey(tea.KeyEnter)) // method: Bottom
	if m.phase != phasePickCount {
		t.Fatalf("phase = %d, want pick count", m.phase)
	}
	m = drive(t, m, specialKey(tea.KeyEnter)) // count: whole set
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", m.phase)
	}
	return m
}

func TestModelSetupFlow(t *testing.T) {
	m := newTestModel(t, []string{"france", "peru"})
	if m.phase != phasePickSet {
		t.Fatalf("initial phase = %d, want pick set", m.phase)
	}

	m = toQuestion(t, m)
	if m.set != "capitals" {
		t.Errorf("set = %q, want capitals", m.set)
	}
	if m.current == nil {
		t.Fatal("expected a current question")
	}
	if m.drillID == "" {
		t.Error("expected a drill id")
	}
	if _, total := m.rounds.Position(); total != 2 {
		t.Errorf("queue length = %d, want 2", total)
	}
}

func TestModelSetupBackNavigation(t *testing.T) {
	m := newTestModel(t, []string{"france"})
	m = drive(t, m, specialKey(tea.KeyEnter))
	m = drive(t, m, specialKey(tea.KeyEnter))
	if m.phase != phasePickMethod {
		t.Fatalf("phase = %d, want pick method", m.phase)
	}

	m = drive(t, m, specialKey(tea.KeyEscape))
	if m.phase != phasePickFilter {
		t.Errorf("phase = %d, want pick filter after esc", m.phase)
	}
	m = drive(t, m, specialKey(tea.KeyEscape))
	if m.phase != phasePickSet {
		t.Errorf("phase = %d, want pick set after esc", m.phase)
	}
}

func TestModelCorrectAnswerFlow(t *testing.T) {
	m := newTestModel(t, []string{"france", "peru"})
	m = toQuestion(t, m)

	for i := 0; i < 2; i++ {
		m.answerIn.Model.SetValue(m.current.Runner.Prompt())
		m = drive(t, m, specialKey(tea.KeyEnter))
		if m.phase != phaseFeedback {
			t.Fatalf("phase = %d, want feedback", m.phase)
		}
		if !m.result.Correct {
			t.Fatalf("answer %d judged wrong", i)
		}
		m = drive(t, m, keyPress(' '))
	}

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary after clean round", m.phase)
	}
	if m.totalCorrect != 2 || m.totalAnswered != 2 {
		t.Errorf("totals = %d/%d, want 2/2", m.totalCorrect, m.totalAnswered)
	}
	if !strings.Contains(m.View(80, 24), m.drillID) {
		t.Error("expected the summary to show the drill id")
	}

	// Any key on the summary requests exit.
	_, cmd := m.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command from summary")
	}
	if _, ok := cmd().(DoneMsg); !ok {
		t.Error("expected DoneMsg from summary keypress")
	}
}

func TestModelWrongAnswerRetryRound(t *testing.T) {
	m := newTestModel(t, []string{"france"})
	m = toQuestion(t, m)

	m.answerIn.Model.SetValue("wrong")
	m = drive(t, m, specialKey(tea.KeyEnter))
	if m.result.Correct {
		t.Fatal("expected wrong answer")
	}

	m = drive(t, m, keyPress(' '))
	if m.phase != phaseRoundBreak {
		t.Fatalf("phase = %d, want round break", m.phase)
	}

	m = drive(t, m, keyPress(' '))
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question in round two", m.phase)
	}
	if m.rounds.Round() != 2 {
		t.Errorf("round = %d, want 2", m.rounds.Round())
	}

	m.answerIn.Model.SetValue(m.current.Runner.Prompt())
	m = drive(t, m, specialKey(tea.KeyEnter))
	m = drive(t, m, keyPress(' '))
	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", m.phase)
	}
}

func TestModelAnswerPersisted(t *testing.T) {
	m := newTestModel(t, []string{"france"})
	m = toQuestion(t, m)
	id := m.current.Question.ID

	m.answerIn.Model.SetValue(m.current.Runner.Prompt())
	m = drive(t, m, specialKey(tea.KeyEnter))
	if m.errMsg != "" {
		t.Fatalf("record answer: %s", m.errMsg)
	}

	item := m.svc.Get(id)
	if len(item.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(item.Answers))
	}
	if !item.Answers[0].Correct {
		t.Error("expected recorded answer to be correct")
	}
}

func TestModelEmptyInputIgnored(t *testing.T) {
	m := newTestModel(t, []string{"france"})
	m = toQuestion(t, m)

	m = drive(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseQuestion {
		t.Errorf("phase = %d, want question after empty submit", m.phase)
	}
}

func TestModelTitleAndHints(t *testing.T) {
	m := newTestModel(t, []string{"france"})
	if m.Title() != "Choose a set" {
		t.Errorf("Title = %q, want %q", m.Title(), "Choose a set")
	}
	if len(m.KeyHints()) == 0 {
		t.Error("expected key hints")
	}

	m = toQuestion(t, m)
	if m.Title() != "capitals" {
		t.Errorf("Title = %q, want capitals", m.Title())
	}
	if m.Status() == "" {
		t.Error("expected a status line during the drill")
	}

	view := m.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}
