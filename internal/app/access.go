package app

import (
	"context"

	"cybershield-academy/internal/domain"
)

// SubscriptionRepository stores the per-user premium access record.
type SubscriptionRepository interface {
	Get(ctx context.Context, userID string) (domain.Subscription, bool, error)
	// Upsert replaces the record for sub.UserID.
	Upsert(ctx context.Context, sub domain.Subscription) error
	// CancelBySubscriptionID marks the matching record canceled; a miss is not
	// an error (the processor may replay events for unknown subscriptions).
	CancelBySubscriptionID(ctx context.Context, subscriptionID string) error
}

// AccessService gates premium learning content on subscription status.
type AccessService struct {
	subs  SubscriptionRepository
	clock Clock
}

func NewAccessService(subs SubscriptionRepository, clock Clock) *AccessService {
	if clock == nil {
		clock = systemClock{}
	}
	return &AccessService{subs: subs, clock: clock}
}

// CanAccess reports whether the user currently holds an active subscription.
func (s *AccessService) CanAccess(ctx context.Context, userID string) (bool, error) {
	sub, ok, err := s.subs.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return ok && sub.Status == domain.SubscriptionActive, nil
}

// Activate records a completed checkout for the user.
func (s *AccessService) Activate(ctx context.Context, userID, customerID, subscriptionID string) error {
	if userID == "" {
		return &domain.ValidationError{Reason: "user id is required"}
	}
	return s.subs.Upsert(ctx, domain.Subscription{
		UserID:         userID,
		Status:         domain.SubscriptionActive,
		CustomerID:     customerID,
		SubscriptionID: subscriptionID,
		UpdatedAt:      s.clock.Now(),
	})
}

// Cancel handles the processor's subscription-deleted event.
func (s *AccessService) Cancel(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return &domain.ValidationError{Reason: "subscription id is required"}
	}
	return s.subs.CancelBySubscriptionID(ctx, subscriptionID)
}
