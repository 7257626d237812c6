package postgres

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cybershield-academy/internal/domain"
)

// ResultRepository persists finished attempts. quiz_results has no uniqueness
// constraint: every finished attempt appends its own row.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func (r *ResultRepository) Append(ctx context.Context, result domain.QuizResult) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quiz_results (user_id, module_id, score, total_questions, passed, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		result.UserID, result.ModuleID, result.Score, result.TotalQuestions, result.Passed, result.CompletedAt)
	if err != nil {
		return &domain.TransientError{Op: "append quiz result", Err: err}
	}
	return nil
}

func (r *ResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.QuizResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, module_id, score, total_questions, passed, completed_at
		 FROM quiz_results WHERE user_id=$1`, userID)
	if err != nil {
		return nil, &domain.TransientError{Op: "list quiz results", Err: err}
	}
	defer rows.Close()
	return scanResults(rows)
}

func (r *ResultRepository) ListByUserModule(ctx context.Context, userID, moduleID string) ([]domain.QuizResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, module_id, score, total_questions, passed, completed_at
		 FROM quiz_results WHERE user_id=$1 AND module_id=$2`, userID, moduleID)
	if err != nil {
		return nil, &domain.TransientError{Op: "list quiz results", Err: err}
	}
	defer rows.Close()
	return scanResults(rows)
}

func scanResults(rows pgx.Rows) ([]domain.QuizResult, error) {
	var out []domain.QuizResult
	for rows.Next() {
		var r domain.QuizResult
		if err := rows.Scan(&r.UserID, &r.ModuleID, &r.Score, &r.TotalQuestions, &r.Passed, &r.CompletedAt); err != nil {
			return nil, &domain.TransientError{Op: "scan quiz result", Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.TransientError{Op: "iterate quiz results", Err: err}
	}
	return out, nil
}
