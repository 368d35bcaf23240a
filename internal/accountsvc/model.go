// Package accountsvc is a stand-in for the external account and
// recommendation service. It implements the same HTTP contract the
// web client's gateway speaks, backed by SQLite, so the client can
// run locally and the contract can be exercised end to end in tests.
// The production deployment replaces it with the real service.
package accountsvc

import (
	"context"
	"time"

	"github.com/pmendys/course-match/internal/domain"
)

// Account is a stored account: a unique email, a hashed password, and
// the preferences captured at signup.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Preferences  domain.Preferences
	CreatedAt    time.Time
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdatePreferences(ctx context.Context, email string, prefs domain.Preferences) error
}

// CourseRepository defines persistence operations for the course
// catalog. The catalog's popularity weight is stored per course and
// drives the recommendation scoring.
type CourseRepository interface {
	Seed(ctx context.Context, courses []domain.Course) error
	All(ctx context.Context) ([]domain.Course, error)
	List(ctx context.Context, limit, offset int) ([]domain.Course, error)
	Count(ctx context.Context) (int, error)
}
