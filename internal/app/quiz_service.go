package app

import (
	"context"

	"go.uber.org/zap"

	"cybershield-academy/internal/domain"
)

// ContentRepository loads module content (from cache/backing store).
type ContentRepository interface {
	GetModule(ctx context.Context, moduleID string) (domain.Module, error)
}

// ResultRepository stores finished attempts. Rows are append-only.
type ResultRepository interface {
	Append(ctx context.Context, result domain.QuizResult) error
	ListByUser(ctx context.Context, userID string) ([]domain.QuizResult, error)
	ListByUserModule(ctx context.Context, userID, moduleID string) ([]domain.QuizResult, error)
}

// QuizService contains the quiz attempt use cases.
type QuizService struct {
	content ContentRepository
	results ResultRepository
	log     *zap.Logger
	clock   Clock
}

// StartedSession pairs a fresh session with the user's best historical score.
// BestScore is nil when no prior rows exist (display nothing, not zero).
type StartedSession struct {
	Session   *Session
	BestScore *int
}

// FinishedAttempt is the outcome of finishing a session. Saved reports
// whether the result row reached the backend; the local result stands either
// way.
type FinishedAttempt struct {
	Result    Result
	Saved     bool
	BestScore *int
}

func NewQuizService(content ContentRepository, results ResultRepository, log *zap.Logger, clock Clock) *QuizService {
	if clock == nil {
		clock = systemClock{}
	}
	return &QuizService{content: content, results: results, log: log, clock: clock}
}

// StartSession loads the module and opens a fresh attempt. The best score is
// recomputed from the stored rows on every start, never carried over from a
// prior session.
func (s *QuizService) StartSession(ctx context.Context, userID, moduleID string) (StartedSession, error) {
	module, err := s.content.GetModule(ctx, moduleID)
	if err != nil {
		return StartedSession{}, err
	}

	started := StartedSession{Session: NewSession(module)}
	if userID != "" {
		best, err := s.BestScore(ctx, userID, moduleID)
		if err != nil {
			// Best score is decorative; a backend hiccup must not block the quiz.
			s.log.Warn("best score lookup failed",
				zap.String("userId", userID), zap.String("moduleId", moduleID), zap.Error(err))
		} else {
			started.BestScore = best
		}
	}
	return started, nil
}

// FinishSession finalizes the attempt and appends exactly one result row.
// Persistence failure is non-fatal: the computed result is returned with
// Saved=false and the error is logged for diagnostics.
func (s *QuizService) FinishSession(ctx context.Context, userID string, session *Session) (FinishedAttempt, error) {
	result, err := session.Finish()
	if err != nil {
		return FinishedAttempt{}, err
	}

	attempt := FinishedAttempt{Result: result}
	if userID == "" {
		return attempt, nil
	}

	row := domain.QuizResult{
		UserID:         userID,
		ModuleID:       session.Module().ID,
		Score:          result.Score,
		TotalQuestions: result.Total,
		Passed:         result.Passed,
		CompletedAt:    s.clock.Now(),
	}
	if err := s.results.Append(ctx, row); err != nil {
		s.log.Warn("quiz result not persisted",
			zap.String("userId", userID), zap.String("moduleId", row.ModuleID), zap.Error(err))
	} else {
		attempt.Saved = true
	}

	if best, err := s.BestScore(ctx, userID, row.ModuleID); err == nil {
		attempt.BestScore = best
	} else if attempt.Saved || result.Percentage > 0 {
		// Fall back to the local attempt when the re-read fails.
		pct := result.Percentage
		attempt.BestScore = &pct
	}
	return attempt, nil
}

// BestScore reduces all stored rows for (user, module) to the maximum rounded
// percentage. Returns nil when no rows exist.
func (s *QuizService) BestScore(ctx context.Context, userID, moduleID string) (*int, error) {
	rows, err := s.results.ListByUserModule(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	best := 0
	for _, r := range rows {
		if p := r.Percentage(); p > best {
			best = p
		}
	}
	return &best, nil
}
