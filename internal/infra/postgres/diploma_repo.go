package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cybershield-academy/internal/domain"
)

const uniqueViolation = "23505"

// DiplomaRepository persists the write-once certificate identity. The
// unique(user_id) constraint is the real arbiter of the issuance race: a
// losing concurrent insert comes back as *domain.ConflictError.
type DiplomaRepository struct {
	pool *pgxpool.Pool
}

func NewDiplomaRepository(pool *pgxpool.Pool) *DiplomaRepository {
	return &DiplomaRepository{pool: pool}
}

func (r *DiplomaRepository) GetByUser(ctx context.Context, userID string) (domain.Diploma, error) {
	var d domain.Diploma
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, full_name, cert_id, created_at FROM diplomas WHERE user_id=$1`,
		userID).Scan(&d.ID, &d.UserID, &d.FullName, &d.CertID, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Diploma{}, domain.ErrDiplomaNotFound
	}
	if err != nil {
		return domain.Diploma{}, &domain.TransientError{Op: "get diploma", Err: err}
	}
	return d, nil
}

func (r *DiplomaRepository) Create(ctx context.Context, diploma domain.Diploma) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO diplomas (id, user_id, full_name, cert_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		diploma.ID, diploma.UserID, diploma.FullName, diploma.CertID, diploma.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &domain.ConflictError{Resource: "diploma"}
		}
		return &domain.TransientError{Op: "create diploma", Err: err}
	}
	return nil
}

func (r *DiplomaRepository) UpdateFullName(ctx context.Context, userID, fullName string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE diplomas SET full_name=$2 WHERE user_id=$1`, userID, fullName)
	if err != nil {
		return &domain.TransientError{Op: "update diploma name", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDiplomaNotFound
	}
	return nil
}
