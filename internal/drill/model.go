package drill

import (
	"context"
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"quizdrill/internal/content"
	"quizdrill/internal/quiz"
	"quizdrill/internal/ui/components"
	"quizdrill/internal/ui/layout"
)

type phase int

const (
	phasePickSet phase = iota
	phasePickFilter
	phasePickMethod
	phasePickCount
	phaseQuestion
	phaseFeedback
	phaseRoundBreak
	phaseSummary
)

// Options preseed the drill setup from config and flags. A zero Num
// means the whole set.
type Options struct {
	Method quiz.Method
	Num    int
}

// Model is the Bubble Tea model for one drill sitting: set and
// strategy selection, then question rounds until every answer in the
// queue was correct once.
type Model struct {
	svc  *quiz.Service
	rng  *rand.Rand
	opts Options

	phase  phase
	errMsg string

	setMenu    components.Menu
	filterMenu components.Menu
	methodMenu components.Menu
	countInput components.TextInput
	answerIn   components.TextInput

	set    string
	filter quiz.Filter
	method quiz.Method

	drillID string
	rounds  *quiz.Rounds
	current *quiz.Item
	result  content.Result

	totalAnswered int
	totalCorrect  int
}

// New creates the drill model. The set menu is built up front from the
// loaded service.
func New(svc *quiz.Service, rng *rand.Rand, opts Options) *Model {
	m := &Model{
		svc:    svc,
		rng:    rng,
		opts:   opts,
		method: opts.Method,
	}
	m.setMenu = components.NewMenu(m.setItems())
	return m
}

func (m *Model) setItems() []components.MenuItem {
	sets := m.svc.Sets()
	items := make([]components.MenuItem, 0, len(sets))
	for _, name := range sets {
		name := name
		items = append(items, components.MenuItem{
			Label:  name,
			Detail: fmt.Sprintf("%d questions", m.svc.SetSize(name, quiz.All)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return setChosenMsg{Set: name} }
			},
		})
	}
	return items
}

func (m *Model) filterItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, 2)
	for _, f := range []quiz.Filter{quiz.All, quiz.Practiced} {
		f := f
		items = append(items, components.MenuItem{
			Label:  f.String(),
			Detail: fmt.Sprintf("%d questions", m.svc.SetSize(m.set, f)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return filterChosenMsg{Filter: f} }
			},
		})
	}
	return items
}

func (m *Model) methodItems() []components.MenuItem {
	methods := quiz.Methods()
	items := make([]components.MenuItem, 0, len(methods))
	for _, method := range methods {
		method := method
		items = append(items, components.MenuItem{
			Label: method.String(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return methodChosenMsg{Method: method} }
			},
		})
	}
	return items
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Title returns the header title for the current phase.
func (m *Model) Title() string {
	switch m.phase {
	case phasePickSet:
		return "Choose a set"
	case phasePickFilter, phasePickMethod, phasePickCount:
		return m.set
	case phaseQuestion, phaseFeedback, phaseRoundBreak:
		return m.set
	case phaseSummary:
		return "Summary"
	}
	return ""
}

// Status returns the right-aligned header status line.
func (m *Model) Status() string {
	if m.rounds == nil {
		return ""
	}
	switch m.phase {
	case phaseQuestion, phaseFeedback:
		pos, total := m.rounds.Position()
		return fmt.Sprintf("round %d  %d/%d", m.rounds.Round(), pos, total)
	case phaseRoundBreak, phaseSummary:
		return fmt.Sprintf("round %d", m.rounds.Round())
	}
	return ""
}

// KeyHints returns the footer hints for the current phase.
func (m *Model) KeyHints() []layout.KeyHint {
	switch m.phase {
	case phasePickSet:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phasePickFilter, phasePickMethod:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case phasePickCount:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "End drill"},
		}
	case phaseFeedback, phaseRoundBreak:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "any key", Description: "Exit"},
		}
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setChosenMsg:
		m.set = msg.Set
		m.filterMenu = components.NewMenu(m.filterItems())
		m.phase = phasePickFilter
		return m, nil

	case filterChosenMsg:
		m.filter = msg.Filter
		m.methodMenu = components.NewMenu(m.methodItems())
		for i, method := range quiz.Methods() {
			if method == m.opts.Method {
				m.methodMenu.Selected = i
			}
		}
		m.phase = phasePickMethod
		return m, nil

	case methodChosenMsg:
		m.method = msg.Method
		placeholder := "all"
		if m.opts.Num > 0 {
			placeholder = fmt.Sprintf("%d", m.opts.Num)
		}
		m.countInput = components.NewTextInput(placeholder, true, 6)
		m.phase = phasePickCount
		return m, m.countInput.Init()

	case answerRecordedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

// forward routes non-key messages to the focused component.
func (m *Model) forward(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.phase {
	case phasePickCount:
		m.countInput, cmd = m.countInput.Update(msg)
	case phaseQuestion:
		m.answerIn, cmd = m.answerIn.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	key := msg.String()

	if m.errMsg != "" {
		return m, func() tea.Msg { return DoneMsg{} }
	}

	switch m.phase {
	case phasePickSet:
		var cmd tea.Cmd
		m.setMenu, cmd = m.setMenu.Update(msg)
		return m, cmd

	case phasePickFilter:
		if key == "esc" {
			m.phase = phasePickSet
			return m, nil
		}
		var cmd tea.Cmd
		m.filterMenu, cmd = m.filterMenu.Update(msg)
		return m, cmd

	case phasePickMethod:
		if key == "esc" {
			m.phase = phasePickFilter
			return m, nil
		}
		var cmd tea.Cmd
		m.methodMenu, cmd = m.methodMenu.Update(msg)
		return m, cmd

	case phasePickCount:
		switch key {
		case "esc":
			m.phase = phasePickMethod
			return m, nil
		case "enter":
			return m.startDrill()
		}
		var cmd tea.Cmd
		m.countInput, cmd = m.countInput.Update(msg)
		return m, cmd

	case phaseQuestion:
		switch key {
		case "esc":
			m.phase = phaseSummary
			return m, nil
		case "enter":
			return m.submitAnswer()
		}
		var cmd tea.Cmd
		m.answerIn, cmd = m.answerIn.Update(msg)
		return m, cmd

	case phaseFeedback:
		return m.advance()

	case phaseRoundBreak:
		m.rounds.NextRound()
		return m.nextQuestion()

	case phaseSummary:
		return m, func() tea.Msg { return DoneMsg{} }
	}

	return m, nil
}

// startDrill resolves the question queue and begins round one.
func (m *Model) startDrill() (*Model, tea.Cmd) {
	num := m.opts.Num
	if v := m.countInput.Value(); v != "" {
		n, err := m.countInput.NumericValue()
		if err != nil {
			m.countInput.SetError("enter a number")
			return m, nil
		}
		num = n
	}
	if num <= 0 {
		num = m.svc.SetSize(m.set, m.filter)
	}

	ids, err := m.svc.Select(m.set, m.method, num, m.filter)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if len(ids) == 0 {
		m.countInput.SetError("no questions match, pick another filter")
		return m, nil
	}

	m.drillID = uuid.New().String()
	m.rounds = quiz.NewRounds(ids, m.rng)
	m.totalAnswered = 0
	m.totalCorrect = 0
	return m.nextQuestion()
}

// nextQuestion loads the current queue entry and resets the input.
func (m *Model) nextQuestion() (*Model, tea.Cmd) {
	id, ok := m.rounds.Current()
	if !ok {
		m.phase = phaseSummary
		return m, nil
	}

	m.current = m.svc.Get(id)
	if m.current == nil {
		m.errMsg = fmt.Sprintf("question %d missing from loaded state", id)
		return m, nil
	}

	m.answerIn = components.NewTextInput("Type your answer...", false, 60)
	m.phase = phaseQuestion
	return m, m.answerIn.Init()
}

// submitAnswer checks the input, records the answer and shows feedback.
func (m *Model) submitAnswer() (*Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}

	input := m.answerIn.Value()
	if input == "" {
		return m, nil
	}
	if err := m.current.Runner.Validate(input); err != nil {
		m.answerIn.SetError(err.Error())
		return m, nil
	}

	m.result = m.current.Runner.Check(input)
	m.rounds.Record(m.result.Correct)
	m.totalAnswered++
	if m.result.Correct {
		m.totalCorrect++
	}

	id := m.current.Question.ID
	correct := m.result.Correct
	svc := m.svc

	m.phase = phaseFeedback
	return m, func() tea.Msg {
		return answerRecordedMsg{Err: svc.AddAnswer(context.Background(), id, correct)}
	}
}

// advance moves past the feedback screen.
func (m *Model) advance() (*Model, tea.Cmd) {
	if m.rounds.EndOfRound() {
		if m.rounds.Finished() {
			m.phase = phaseSummary
			return m, nil
		}
		m.phase = phaseRoundBreak
		return m, nil
	}
	return m.nextQuestion()
}
