package drill

import "quizdrill/internal/quiz"

// setChosenMsg is sent when a question set is picked from the menu.
type setChosenMsg struct {
	Set string
}

// filterChosenMsg is sent when the question filter is picked.
type filterChosenMsg struct {
	Filter quiz.Filter
}

// methodChosenMsg is sent when the selection method is picked.
type methodChosenMsg struct {
	Method quiz.Method
}

// answerRecordedMsg is sent when an answer has been persisted.
type answerRecordedMsg struct {
	Err error
}

// DoneMsg is sent when the learner leaves the summary screen. The
// hosting program treats it as a quit request.
type DoneMsg struct{}
