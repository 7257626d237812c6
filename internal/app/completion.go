package app

import "cybershield-academy/internal/domain"

// BuildProgress derives completion state from the full result set for a user.
// One passing row per module is sufficient; later failing attempts do not
// revoke completion. Pure function, recomputed on every load.
func BuildProgress(required []string, results []domain.QuizResult) domain.Progress {
	passed := make(map[string]bool)
	for _, r := range results {
		if r.Passed {
			passed[r.ModuleID] = true
		}
	}

	progress := domain.Progress{
		Required:  required,
		Completed: make(map[string]bool, len(required)),
	}
	progress.AllCompleted = true
	for _, moduleID := range required {
		done := passed[moduleID]
		progress.Completed[moduleID] = done
		if done {
			progress.CompletedCount++
		} else {
			progress.AllCompleted = false
		}
	}
	return progress
}
