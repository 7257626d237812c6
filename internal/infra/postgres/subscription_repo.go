package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cybershield-academy/internal/domain"
)

// SubscriptionRepository stores per-user premium access, updated only by the
// payment webhook.
type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) Get(ctx context.Context, userID string) (domain.Subscription, bool, error) {
	var s domain.Subscription
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, status, customer_id, subscription_id, updated_at
		 FROM user_subscriptions WHERE user_id=$1`,
		userID).Scan(&s.UserID, &s.Status, &s.CustomerID, &s.SubscriptionID, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Subscription{}, false, nil
	}
	if err != nil {
		return domain.Subscription{}, false, &domain.TransientError{Op: "get subscription", Err: err}
	}
	return s, true, nil
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, sub domain.Subscription) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_subscriptions (user_id, status, customer_id, subscription_id, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET status=EXCLUDED.status, customer_id=EXCLUDED.customer_id,
		     subscription_id=EXCLUDED.subscription_id, updated_at=EXCLUDED.updated_at`,
		sub.UserID, sub.Status, sub.CustomerID, sub.SubscriptionID, sub.UpdatedAt)
	if err != nil {
		return &domain.TransientError{Op: "upsert subscription", Err: err}
	}
	return nil
}

func (r *SubscriptionRepository) CancelBySubscriptionID(ctx context.Context, subscriptionID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE user_subscriptions SET status=$2, updated_at=now() WHERE subscription_id=$1`,
		subscriptionID, domain.SubscriptionCanceled)
	if err != nil {
		return &domain.TransientError{Op: "cancel subscription", Err: err}
	}
	return nil
}
