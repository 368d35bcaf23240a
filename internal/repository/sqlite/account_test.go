package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pmendys/course-match/internal/accountsvc"
	"github.com/pmendys/course-match/internal/domain"
	"github.com/pmendys/course-match/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	return db
}

func testAccount() *accountsvc.Account {
	return &accountsvc.Account{
		Email:        "ana@x.com",
		PasswordHash: "$2a$04$fakehashforaccounttests",
		Preferences: domain.Preferences{
			Interests:      []string{"Data Science", "Machine Learning"},
			SkillLevel:     domain.SkillBeginner,
			TimeCommitment: domain.TimeFiveToTen,
			LearningGoal:   domain.GoalSkillUpgrade,
		},
	}
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	repo := newTestDB(t).Accounts()
	ctx := context.Background()

	account := testAccount()
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if account.ID == 0 {
		t.Fatal("expected Create to set the ID")
	}
	if account.CreatedAt.IsZero() {
		t.Fatal("expected Create to set CreatedAt")
	}

	got, err := repo.GetByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != account.ID || got.PasswordHash != account.PasswordHash {
		t.Fatalf("stored account mismatch: %+v", got)
	}
	if len(got.Preferences.Interests) != 2 || got.Preferences.Interests[1] != "Machine Learning" {
		t.Fatalf("interests did not round-trip: %v", got.Preferences.Interests)
	}
	if got.Preferences.SkillLevel != domain.SkillBeginner {
		t.Fatalf("preferences did not round-trip: %+v", got.Preferences)
	}
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	repo := newTestDB(t).Accounts()
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount()); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := repo.Create(ctx, testAccount())
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountRepository_GetUnknownEmail(t *testing.T) {
	repo := newTestDB(t).Accounts()

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
