package app_test

import (
	"testing"

	"cybershield-academy/internal/app"
	"cybershield-academy/internal/domain"
)

func testModule(questions int) domain.Module {
	qs := make([]domain.Question, questions)
	for i := range qs {
		qs[i] = domain.Question{
			ID:           "q",
			CorrectIndex: 1,
			OptionCount:  4,
			Text: map[domain.Locale]domain.QuestionText{
				domain.LocaleEN: {
					Prompt:  "Pick the second option",
					Options: []string{"a", "b", "c", "d"},
				},
			},
		}
	}
	return domain.Module{ID: "test-module", Questions: qs}
}

func answerAndCheck(t *testing.T, s *app.Session, option int) {
	t.Helper()
	if err := s.Select(option); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := s.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestSessionFullPassFlow(t *testing.T) {
	s := app.NewSession(testModule(5))

	for i := 0; i < 5; i++ {
		answerAndCheck(t, s, 1)
		if i < 4 {
			if err := s.Next(); err != nil {
				t.Fatalf("next: %v", err)
			}
		}
	}

	result, err := s.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.Score != 5 || result.Percentage != 100 || !result.Passed {
		t.Fatalf("expected 5/5 pass, got %+v", result)
	}
}

func TestSessionScoringBoundary(t *testing.T) {
	// 4/5 = 80% passes the default 70 threshold, 3/5 = 60% fails it.
	cases := []struct {
		correct int
		pct     int
		passed  bool
	}{
		{4, 80, true},
		{3, 60, false},
	}
	for _, tc := range cases {
		s := app.NewSession(testModule(5))
		for i := 0; i < 5; i++ {
			option := 1
			if i >= tc.correct {
				option = 0
			}
			answerAndCheck(t, s, option)
			if i < 4 {
				if err := s.Next(); err != nil {
					t.Fatalf("next: %v", err)
				}
			}
		}
		result, err := s.Finish()
		if err != nil {
			t.Fatalf("finish: %v", err)
		}
		if result.Percentage != tc.pct || result.Passed != tc.passed {
			t.Fatalf("%d correct: expected pct=%d passed=%v, got %+v",
				tc.correct, tc.pct, tc.passed, result)
		}
	}
}

func TestSelectRejectedAfterCheck(t *testing.T) {
	s := app.NewSession(testModule(2))
	answerAndCheck(t, s, 1)

	if err := s.Select(0); err != domain.ErrAlreadyChecked {
		t.Fatalf("expected ErrAlreadyChecked, got %v", err)
	}
}

func TestSelectOptionOutOfRange(t *testing.T) {
	s := app.NewSession(testModule(1))
	if err := s.Select(4); err != domain.ErrOptionOutOfRange {
		t.Fatalf("expected ErrOptionOutOfRange, got %v", err)
	}
	if err := s.Select(-1); err != domain.ErrOptionOutOfRange {
		t.Fatalf("expected ErrOptionOutOfRange, got %v", err)
	}
}

func TestCheckRequiresSelection(t *testing.T) {
	s := app.NewSession(testModule(1))
	if _, err := s.Check(); err != domain.ErrNoSelection {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestNextRequiresCheck(t *testing.T) {
	s := app.NewSession(testModule(2))
	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Next(); err != domain.ErrNotChecked {
		t.Fatalf("expected ErrNotChecked, got %v", err)
	}
}

func TestNextUnavailableOnLastQuestion(t *testing.T) {
	s := app.NewSession(testModule(1))
	answerAndCheck(t, s, 1)
	if err := s.Next(); err != domain.ErrNextUnavailable {
		t.Fatalf("expected ErrNextUnavailable, got %v", err)
	}
}

func TestFinishGatedOnLastCheckedQuestion(t *testing.T) {
	s := app.NewSession(testModule(2))
	answerAndCheck(t, s, 1)

	// Not on the last question yet.
	if _, err := s.Finish(); err != domain.ErrFinishUnavailable {
		t.Fatalf("expected ErrFinishUnavailable, got %v", err)
	}

	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	// On the last question but unchecked.
	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := s.Finish(); err != domain.ErrFinishUnavailable {
		t.Fatalf("expected ErrFinishUnavailable, got %v", err)
	}

	if _, err := s.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if _, err := s.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
}

func TestFinishedSessionIsTerminal(t *testing.T) {
	s := app.NewSession(testModule(1))
	answerAndCheck(t, s, 1)
	if _, err := s.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if err := s.Select(0); err != domain.ErrSessionFinished {
		t.Fatalf("expected ErrSessionFinished on select, got %v", err)
	}
	if _, err := s.Check(); err != domain.ErrSessionFinished {
		t.Fatalf("expected ErrSessionFinished on check, got %v", err)
	}
	if _, err := s.Finish(); err != domain.ErrSessionFinished {
		t.Fatalf("expected ErrSessionFinished on second finish, got %v", err)
	}
	if s.State() != app.StateFinished {
		t.Fatalf("expected finished state, got %v", s.State())
	}
}

func TestRetryResetsEverything(t *testing.T) {
	s := app.NewSession(testModule(2))
	answerAndCheck(t, s, 1)
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	answerAndCheck(t, s, 0)
	if _, err := s.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	s.Retry()

	if s.Current() != 0 {
		t.Fatalf("expected index 0 after retry, got %d", s.Current())
	}
	if s.State() != app.StateAnswering {
		t.Fatalf("expected answering state after retry, got %v", s.State())
	}
	for i := 0; i < 2; i++ {
		if s.Answer(i) != app.NoAnswer {
			t.Fatalf("expected question %d cleared, got %d", i, s.Answer(i))
		}
		if s.IsChecked(i) {
			t.Fatalf("expected question %d unchecked after retry", i)
		}
	}
	if _, ok := s.Result(); ok {
		t.Fatalf("expected no result after retry")
	}
}
