package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Locale identifies one of the supported content languages.
type Locale string

const (
	LocaleBG Locale = "bg"
	LocaleEN Locale = "en"
)

// ParseLocale maps a raw string to a supported locale, defaulting to Bulgarian.
func ParseLocale(raw string) Locale {
	if Locale(raw) == LocaleEN {
		return LocaleEN
	}
	return LocaleBG
}

// QuestionText holds the localized rendering of one question.
type QuestionText struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Question is a single-choice question. Correctness metadata is stored once,
// language-independent; localized text hangs off the stable question ID so
// language variants cannot drift structurally.
type Question struct {
	ID           string                  `json:"id"`
	CorrectIndex int                     `json:"correctIndex"`
	OptionCount  int                     `json:"optionCount"`
	Text         map[Locale]QuestionText `json:"text"`
}

// Localized returns the question text for loc, falling back bg -> en.
func (q Question) Localized(loc Locale) QuestionText {
	if t, ok := q.Text[loc]; ok {
		return t
	}
	if t, ok := q.Text[LocaleBG]; ok {
		return t
	}
	return q.Text[LocaleEN]
}

// Module is one learning module's quiz content.
type Module struct {
	ID           string     `json:"id"`
	PassingScore int        `json:"passingScore"` // percentage threshold; 0 means default
	Questions    []Question `json:"questions"`
}

// DefaultPassingScore applies when a module does not override the threshold.
const DefaultPassingScore = 70

// Threshold returns the effective passing score for the module.
func (m Module) Threshold() int {
	if m.PassingScore > 0 {
		return m.PassingScore
	}
	return DefaultPassingScore
}

// QuizResult is one finished attempt. Rows are append-only; the best score is
// derived by reduction over all rows for a (user, module) pair.
type QuizResult struct {
	UserID         string    `json:"userId"`
	ModuleID       string    `json:"moduleId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Passed         bool      `json:"passed"`
	CompletedAt    time.Time `json:"completedAt"`
}

// Percentage is the attempt score as a rounded 0-100 value.
func (r QuizResult) Percentage() int {
	return Percentage(r.Score, r.TotalQuestions)
}

// Percentage rounds 100*score/total half-up. It is the single rounding point
// shared by scoring and display.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Diploma is the write-once certificate identity. At most one row exists per
// user; FullName and CertID never change through the issuance path.
type Diploma struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	CertID    string    `json:"certId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Progress is the derived completion state for one user.
type Progress struct {
	Required       []string        `json:"required"`
	Completed      map[string]bool `json:"completed"`
	CompletedCount int             `json:"completedCount"`
	AllCompleted   bool            `json:"allCompleted"`
}

// Subscription statuses, mirroring the payment processor's lifecycle.
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionCanceled = "canceled"
)

// Subscription is the premium-access record for a user. The payment webhook
// owns it; everything else reads it.
type Subscription struct {
	UserID         string    `json:"userId"`
	Status         string    `json:"status"`
	CustomerID     string    `json:"customerId"`
	SubscriptionID string    `json:"subscriptionId"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
