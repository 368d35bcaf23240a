package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pmendys/course-match/internal/accountsvc"
	"github.com/pmendys/course-match/internal/domain"
)

// AccountRepository implements accountsvc.AccountRepository using SQLite.
type AccountRepository struct {
	db *sql.DB
}

func (r *AccountRepository) Create(ctx context.Context, account *accountsvc.Account) error {
	interests, err := json.Marshal(account.Preferences.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, interests, skill_level, time_commitment, learning_goal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.Email, account.PasswordHash, string(interests),
		account.Preferences.SkillLevel, account.Preferences.TimeCommitment, account.Preferences.LearningGoal,
		now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	account.ID = id
	account.CreatedAt = now
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*accountsvc.Account, error) {
	account := &accountsvc.Account{}
	var interests string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, interests, skill_level, time_commitment, learning_goal, created_at
		 FROM accounts WHERE email = ?`, email,
	).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &interests,
		&account.Preferences.SkillLevel, &account.Preferences.TimeCommitment, &account.Preferences.LearningGoal,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account by email: %w", err)
	}

	if err := json.Unmarshal([]byte(interests), &account.Preferences.Interests); err != nil {
		return nil, fmt.Errorf("decode interests: %w", err)
	}
	return account, nil
}

// UpdatePreferences overwrites the preferences stored against an
// email. The old record is replaced wholesale, never merged.
func (r *AccountRepository) UpdatePreferences(ctx context.Context, email string, prefs domain.Preferences) error {
	interests, err := json.Marshal(prefs.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET interests = ?, skill_level = ?, time_commitment = ?, learning_goal = ?
		 WHERE email = ?`,
		string(interests), prefs.SkillLevel, prefs.TimeCommitment, prefs.LearningGoal, email,
	)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
