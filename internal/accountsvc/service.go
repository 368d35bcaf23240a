package accountsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmendys/course-match/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AccountService creates and looks up accounts.
type AccountService struct {
	accounts   AccountRepository
	bcryptCost int
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts AccountRepository, bcryptCost int) *AccountService {
	return &AccountService{accounts: accounts, bcryptCost: bcryptCost}
}

// Signup stores an account keyed by email with the attached
// preferences record. The record must be complete; an incomplete one
// is rejected with a ValidationError. When the email is already taken
// and the submitted password matches the stored hash, the call is the
// same user resubmitting the questionnaire, so the stored preferences
// are replaced wholesale. A taken email with a non-matching password
// returns domain.ErrDuplicateEmail.
func (s *AccountService) Signup(ctx context.Context, email, password string, prefs domain.Preferences) (*Account, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	prefs = prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &Account{
		Email:        email,
		PasswordHash: string(hash),
		Preferences:  prefs,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return s.resubmit(ctx, email, password, prefs)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// resubmit handles signup against an already-taken email. The stored
// preferences are replaced when the caller proves it owns the account
// by presenting the original password; anything else is a conflict.
func (s *AccountService) resubmit(ctx context.Context, email, password string, prefs domain.Preferences) (*Account, error) {
	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load existing account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrDuplicateEmail
	}

	if err := s.accounts.UpdatePreferences(ctx, email, prefs); err != nil {
		return nil, fmt.Errorf("replace preferences: %w", err)
	}
	existing.Preferences = prefs
	return existing, nil
}

// Login returns the preferences stored against an email. The contract
// identifies accounts by email alone; no credential check happens
// here. Unknown emails return domain.ErrNotFound.
func (s *AccountService) Login(ctx context.Context, email string) (domain.Preferences, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return domain.Preferences{}, err
	}
	return account.Preferences, nil
}
