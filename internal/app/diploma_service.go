package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cybershield-academy/internal/domain"
)

// DiplomaRepository stores the write-once certificate identity.
type DiplomaRepository interface {
	// GetByUser returns domain.ErrDiplomaNotFound when no row exists.
	GetByUser(ctx context.Context, userID string) (domain.Diploma, error)
	// Create fails with *domain.ConflictError when the user already has a row.
	Create(ctx context.Context, diploma domain.Diploma) error
	// UpdateFullName is the administrative correction path. It bypasses
	// issuance preconditions and edits the persisted row directly.
	UpdateFullName(ctx context.Context, userID, fullName string) error
}

// CertificateRenderer turns a persisted diploma into a downloadable artifact.
type CertificateRenderer interface {
	Render(diploma domain.Diploma, loc domain.Locale) ([]byte, error)
	FileName(loc domain.Locale) string
}

// DiplomaService implements the certification pipeline: completion-gated
// first mint, then render-only re-downloads from the persisted tuple.
type DiplomaService struct {
	results  ResultRepository
	diplomas DiplomaRepository
	renderer CertificateRenderer
	required []string
	certIDs  certIDSource
	clock    Clock
	log      *zap.Logger
}

func NewDiplomaService(results ResultRepository, diplomas DiplomaRepository, renderer CertificateRenderer, required []string, log *zap.Logger, clock Clock) *DiplomaService {
	if clock == nil {
		clock = systemClock{}
	}
	return &DiplomaService{
		results:  results,
		diplomas: diplomas,
		renderer: renderer,
		required: required,
		clock:    clock,
		log:      log,
	}
}

// Get returns the user's diploma or domain.ErrDiplomaNotFound.
func (s *DiplomaService) Get(ctx context.Context, userID string) (domain.Diploma, error) {
	return s.diplomas.GetByUser(ctx, userID)
}

// Progress recomputes the user's completion state from stored results.
func (s *DiplomaService) Progress(ctx context.Context, userID string) (domain.Progress, error) {
	rows, err := s.results.ListByUser(ctx, userID)
	if err != nil {
		return domain.Progress{}, err
	}
	return BuildProgress(s.required, rows), nil
}

// Issue mints the diploma on first full completion. The completion predicate
// and the absence check run before the write; a concurrent winner surfaces as
// *domain.ConflictError and the caller must re-fetch via Get instead of
// retrying the mint.
func (s *DiplomaService) Issue(ctx context.Context, userID, fullName string) (domain.Diploma, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return domain.Diploma{}, &domain.ValidationError{Reason: "full name is required"}
	}

	if _, err := s.diplomas.GetByUser(ctx, userID); err == nil {
		return domain.Diploma{}, &domain.ConflictError{Resource: "diploma"}
	} else if err != domain.ErrDiplomaNotFound {
		return domain.Diploma{}, err
	}

	progress, err := s.Progress(ctx, userID)
	if err != nil {
		return domain.Diploma{}, err
	}
	if !progress.AllCompleted {
		return domain.Diploma{}, &domain.ValidationError{Reason: "not all modules completed"}
	}

	now := s.clock.Now()
	diploma := domain.Diploma{
		ID:        uuid.New(),
		UserID:    userID,
		FullName:  fullName,
		CertID:    s.certIDs.next(now),
		CreatedAt: now,
	}
	if err := s.diplomas.Create(ctx, diploma); err != nil {
		return domain.Diploma{}, err
	}
	s.log.Info("diploma issued",
		zap.String("userId", userID), zap.String("certId", diploma.CertID))
	return diploma, nil
}

// Render re-renders the artifact from the persisted tuple. It never mutates
// state and stays available regardless of current completion status, so the
// diploma downloaded next year matches the one downloaded today.
func (s *DiplomaService) Render(diploma domain.Diploma, loc domain.Locale) ([]byte, string, error) {
	data, err := s.renderer.Render(diploma, loc)
	if err != nil {
		return nil, "", err
	}
	return data, s.renderer.FileName(loc), nil
}

// Rename is the privileged correction path for the holder's name.
func (s *DiplomaService) Rename(ctx context.Context, userID, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return &domain.ValidationError{Reason: "full name is required"}
	}
	return s.diplomas.UpdateFullName(ctx, userID, fullName)
}
