package app

import (
	"cybershield-academy/internal/domain"
)

// NoAnswer marks a question that has not been answered yet.
const NoAnswer = -1

// SessionState is the position of an attempt in its lifecycle.
type SessionState int

const (
	// StateAnswering allows selecting an option for the current question.
	StateAnswering SessionState = iota
	// StateChecked means the current answer is locked and revealed.
	StateChecked
	// StateFinished is terminal; only Retry leaves it.
	StateFinished
)

// Session is one in-memory quiz attempt for a single module. Nothing here is
// persisted; only the derived QuizResult leaves the session. A session belongs
// to one connection and needs no locking.
type Session struct {
	module   domain.Module
	current  int
	answers  []int
	checked  []bool
	finished bool
	result   *Result
}

// Result is the computed outcome of a finished attempt.
type Result struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// CheckOutcome reveals the correct option after an explicit check action.
type CheckOutcome struct {
	QuestionIndex int  `json:"questionIndex"`
	CorrectIndex  int  `json:"correctIndex"`
	Correct       bool `json:"correct"`
}

// NewSession starts an attempt at question 0 with no answers recorded.
func NewSession(module domain.Module) *Session {
	answers := make([]int, len(module.Questions))
	for i := range answers {
		answers[i] = NoAnswer
	}
	return &Session{
		module:  module,
		answers: answers,
		checked: make([]bool, len(module.Questions)),
	}
}

// State reports the lifecycle position for the current question.
func (s *Session) State() SessionState {
	switch {
	case s.finished:
		return StateFinished
	case s.checked[s.current]:
		return StateChecked
	default:
		return StateAnswering
	}
}

// Current returns the index of the question being answered or reviewed.
func (s *Session) Current() int { return s.current }

// Module returns the content the session was started with.
func (s *Session) Module() domain.Module { return s.module }

// Answer returns the recorded selection for question i, or NoAnswer.
func (s *Session) Answer(i int) int {
	if i < 0 || i >= len(s.answers) {
		return NoAnswer
	}
	return s.answers[i]
}

// IsChecked reports whether question i has been checked. Checked flags are
// tracked per index, independent of the current position.
func (s *Session) IsChecked(i int) bool {
	if i < 0 || i >= len(s.checked) {
		return false
	}
	return s.checked[i]
}

// AllAnswered reports whether every question has a recorded selection.
func (s *Session) AllAnswered() bool {
	for _, a := range s.answers {
		if a == NoAnswer {
			return false
		}
	}
	return true
}

// Select records an option for the current question, overwriting any prior
// selection. Rejected once the question is checked or the session finished.
func (s *Session) Select(option int) error {
	if s.finished {
		return domain.ErrSessionFinished
	}
	if s.checked[s.current] {
		return domain.ErrAlreadyChecked
	}
	q := s.module.Questions[s.current]
	if option < 0 || option >= q.OptionCount {
		return domain.ErrOptionOutOfRange
	}
	s.answers[s.current] = option
	return nil
}

// Check locks the current answer and reveals the correct option. It requires
// a selection to exist for the current question.
func (s *Session) Check() (CheckOutcome, error) {
	if s.finished {
		return CheckOutcome{}, domain.ErrSessionFinished
	}
	if s.checked[s.current] {
		return CheckOutcome{}, domain.ErrAlreadyChecked
	}
	if s.answers[s.current] == NoAnswer {
		return CheckOutcome{}, domain.ErrNoSelection
	}
	s.checked[s.current] = true
	q := s.module.Questions[s.current]
	return CheckOutcome{
		QuestionIndex: s.current,
		CorrectIndex:  q.CorrectIndex,
		Correct:       s.answers[s.current] == q.CorrectIndex,
	}, nil
}

// Next moves to the following question after a check. The prior answer for
// that question, if any, remains recorded and becomes the current selection.
func (s *Session) Next() error {
	if s.finished {
		return domain.ErrSessionFinished
	}
	if !s.checked[s.current] {
		return domain.ErrNotChecked
	}
	if s.current >= len(s.module.Questions)-1 {
		return domain.ErrNextUnavailable
	}
	s.current++
	return nil
}

// Finish computes the result and makes the session terminal. It is available
// only on the last question, after its check, with every question answered.
func (s *Session) Finish() (Result, error) {
	if s.finished {
		return Result{}, domain.ErrSessionFinished
	}
	if s.current != len(s.module.Questions)-1 || !s.checked[s.current] || !s.AllAnswered() {
		return Result{}, domain.ErrFinishUnavailable
	}
	score := 0
	for i, q := range s.module.Questions {
		if s.answers[i] == q.CorrectIndex {
			score++
		}
	}
	total := len(s.module.Questions)
	pct := domain.Percentage(score, total)
	s.result = &Result{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Passed:     pct >= s.module.Threshold(),
	}
	s.finished = true
	return *s.result, nil
}

// Result returns the computed outcome once finished.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Retry discards the attempt: all answers cleared, index 0, no checked flags.
// Previously persisted results are untouched; the next finish appends a new
// row.
func (s *Session) Retry() {
	for i := range s.answers {
		s.answers[i] = NoAnswer
		s.checked[i] = false
	}
	s.current = 0
	s.finished = false
	s.result = nil
}
