package memory

import (
	"context"
	"sync"

	"cybershield-academy/internal/domain"
)

// ResultStore is an in-memory append-only implementation of
// app.ResultRepository.
type ResultStore struct {
	mu   sync.RWMutex
	rows []domain.QuizResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) Append(_ context.Context, result domain.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, result)
	return nil
}

func (s *ResultStore) ListByUser(_ context.Context, userID string) ([]domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.QuizResult
	for _, r := range s.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ResultStore) ListByUserModule(_ context.Context, userID, moduleID string) ([]domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.QuizResult
	for _, r := range s.rows {
		if r.UserID == userID && r.ModuleID == moduleID {
			out = append(out, r)
		}
	}
	return out, nil
}

// DiplomaStore is an in-memory implementation of app.DiplomaRepository with
// the same at-most-one-row-per-user behavior the unique constraint enforces
// in Postgres.
type DiplomaStore struct {
	mu     sync.RWMutex
	byUser map[string]domain.Diploma
}

func NewDiplomaStore() *DiplomaStore {
	return &DiplomaStore{byUser: make(map[string]domain.Diploma)}
}

func (s *DiplomaStore) GetByUser(_ context.Context, userID string) (domain.Diploma, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.byUser[userID]
	if !ok {
		return domain.Diploma{}, domain.ErrDiplomaNotFound
	}
	return d, nil
}

func (s *DiplomaStore) Create(_ context.Context, diploma domain.Diploma) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[diploma.UserID]; ok {
		return &domain.ConflictError{Resource: "diploma"}
	}
	s.byUser[diploma.UserID] = diploma
	return nil
}

func (s *DiplomaStore) UpdateFullName(_ context.Context, userID, fullName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.byUser[userID]
	if !ok {
		return domain.ErrDiplomaNotFound
	}
	d.FullName = fullName
	s.byUser[userID] = d
	return nil
}

// SubscriptionStore is an in-memory implementation of
// app.SubscriptionRepository.
type SubscriptionStore struct {
	mu     sync.RWMutex
	byUser map[string]domain.Subscription
}

func NewSubscriptionStore() *SubscriptionStore {
	return &SubscriptionStore{byUser: make(map[string]domain.Subscription)}
}

func (s *SubscriptionStore) Get(_ context.Context, userID string) (domain.Subscription, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.byUser[userID]
	return sub, ok, nil
}

func (s *SubscriptionStore) Upsert(_ context.Context, sub domain.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[sub.UserID] = sub
	return nil
}

func (s *SubscriptionStore) CancelBySubscriptionID(_ context.Context, subscriptionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, sub := range s.byUser {
		if sub.SubscriptionID == subscriptionID {
			sub.Status = domain.SubscriptionCanceled
			s.byUser[userID] = sub
		}
	}
	return nil
}
