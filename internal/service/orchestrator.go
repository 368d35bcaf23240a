package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pmendys/course-match/internal/domain"
)

// User-visible messages for gateway outcomes. The not-found wording is
// part of the entry screen's contract with the user.
const (
	NoticeNoAccount   = "No account found with this email. Please sign up."
	NoticeUnavailable = "The course service is unavailable right now. Please try again."
	NoticeBusy        = "Hold on, your previous request is still being processed."
)

// recommendCount is how many courses to request per recommendation fetch.
const recommendCount = 10

// AccountGateway is the orchestrator's view of the external account
// and recommendation service.
type AccountGateway interface {
	Login(ctx context.Context, email string) (domain.Preferences, error)
	Signup(ctx context.Context, email, password string, prefs domain.Preferences) error
	Recommend(ctx context.Context, prefs domain.Preferences, n int) ([]domain.Course, error)
	Courses(ctx context.Context, limit, page int) ([]domain.Course, int, error)
}

// Orchestrator owns every active session's state and is the only
// place transitions happen. Each browser session maps to one slot;
// the slot serializes transitions so at most one gateway call is in
// flight per session, and an epoch counter lets results that resolve
// after a logout or retake be discarded instead of applied to a
// screen the user already left.
type Orchestrator struct {
	gateway AccountGateway

	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	state domain.Session
	busy  bool
	epoch uint64
}

// NewOrchestrator creates an Orchestrator backed by the given gateway.
func NewOrchestrator(gateway AccountGateway) *Orchestrator {
	return &Orchestrator{
		gateway: gateway,
		slots:   make(map[string]*slot),
	}
}

// Start creates a fresh session on the entry screen and returns its id.
func (o *Orchestrator) Start() (string, domain.Session) {
	id := uuid.NewString()
	state := domain.NewSession()

	o.mu.Lock()
	o.slots[id] = &slot{state: state}
	o.mu.Unlock()

	return id, state
}

// Current returns the state of an existing session.
func (o *Orchestrator) Current(id string) (domain.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.slots[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return s.state, nil
}

// Login handles the entry screen's sign-in submission. On success the
// stored preferences and a ranked course list are fetched and the
// session lands on the recommendations screen. An unknown email or an
// unreachable service leaves the session on the entry screen with a
// visible message; the returned error carries the cause.
func (o *Orchestrator) Login(ctx context.Context, id, name, email, password string) (domain.Session, error) {
	epoch, state, err := o.begin(id)
	if err != nil {
		return state, err
	}

	identity := domain.Identity{Name: displayName(name, email), Email: email, Password: password}

	prefs, gwErr := o.gateway.Login(ctx, email)
	var courses []domain.Course
	if gwErr == nil {
		courses, gwErr = o.gateway.Recommend(ctx, prefs, recommendCount)
	}

	return o.finish(id, epoch, func(state domain.Session) (domain.Session, error) {
		if gwErr != nil {
			switch {
			case errors.Is(gwErr, domain.ErrNotFound):
				return state.WithNotice(NoticeNoAccount), gwErr
			default:
				return state.WithNotice(NoticeUnavailable), gwErr
			}
		}
		next, trErr := state.LoginSucceeded(identity, prefs, courses)
		if trErr != nil {
			return state.WithNotice(NoticeUnavailable), trErr
		}
		return next, nil
	})
}

// Signup handles the entry screen's create-account submission. No
// server call happens yet; the session moves to the questionnaire
// where preferences are collected before anything is persisted.
func (o *Orchestrator) Signup(id, name, email, password string) (domain.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.slots[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	if s.busy {
		return s.state.WithNotice(NoticeBusy), domain.ErrBusy
	}

	identity := domain.Identity{Name: displayName(name, email), Email: email, Password: password}
	next, err := s.state.SignupStarted(identity)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// Complete handles questionnaire completion. The collected record is
// validated, persisted through the gateway's signup, and only then
// does the session advance to the recommendations screen. A persist
// failure keeps the session on the questionnaire with a visible,
// retryable message; the user's answers must never be silently lost.
func (o *Orchestrator) Complete(ctx context.Context, id string, prefs domain.Preferences) (domain.Session, error) {
	prefs = prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		state, _ := o.Current(id)
		return state, err
	}

	epoch, state, err := o.begin(id)
	if err != nil {
		return state, err
	}
	if state.Screen() != domain.ScreenQuestionnaire {
		return o.finish(id, epoch, func(state domain.Session) (domain.Session, error) {
			return state, domain.ErrInvalidTransition
		})
	}

	identity := state.Identity()
	gwErr := o.gateway.Signup(ctx, identity.Email, identity.Password, prefs)
	var courses []domain.Course
	if gwErr == nil {
		courses, gwErr = o.gateway.Recommend(ctx, prefs, recommendCount)
	}

	return o.finish(id, epoch, func(state domain.Session) (domain.Session, error) {
		if gwErr != nil {
			return state.WithNotice(noticeFor(gwErr)), gwErr
		}
		next, trErr := state.QuestionnaireCompleted(prefs, courses)
		if trErr != nil {
			return state.WithNotice(NoticeUnavailable), trErr
		}
		return next, nil
	})
}

// Retake sends the session from recommendations back to the
// questionnaire, clearing the session's preferences. The record held
// by the account service is untouched. The epoch bump invalidates any
// stale in-flight result.
func (o *Orchestrator) Retake(id string) (domain.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.slots[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	next, err := s.state.Retake()
	if err != nil {
		return s.state, err
	}
	s.state = next
	s.epoch++
	return next, nil
}

// Logout discards everything and returns the session to the entry
// screen. It works from any state, even while a request is in flight;
// the epoch bump guarantees the in-flight result is dropped.
func (o *Orchestrator) Logout(id string) domain.Session {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.slots[id]
	if !ok {
		return domain.NewSession()
	}
	s.state = s.state.Logout()
	s.epoch++
	return s.state
}

// Featured returns courses for the entry screen's featured section.
// The entry screen must render even when the catalog is unreachable,
// so failures fall back to a built-in trio instead of erroring.
func (o *Orchestrator) Featured(ctx context.Context) []domain.Course {
	courses, _, err := o.gateway.Courses(ctx, featuredCount, 1)
	if err != nil || len(courses) == 0 {
		if err != nil {
			slog.Warn("featured courses unavailable, using fallback", "error", err)
		}
		return fallbackFeatured()
	}
	if len(courses) > featuredCount {
		courses = courses[:featuredCount]
	}
	return courses
}

// begin marks the session busy and snapshots its epoch. A session that
// is already busy rejects the second submission outright; the UI gates
// the control, this is the backstop.
func (o *Orchestrator) begin(id string) (uint64, domain.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.slots[id]
	if !ok {
		return 0, domain.Session{}, domain.ErrNotFound
	}
	if s.busy {
		return 0, s.state.WithNotice(NoticeBusy), domain.ErrBusy
	}
	s.busy = true
	s.state = s.state.ClearNotice()
	return s.epoch, s.state, nil
}

// finish applies the outcome of a gateway call, unless the session's
// epoch moved while the call was outstanding (logout or retake), in
// which case the result is discarded rather than applied to a screen
// the user already left.
func (o *Orchestrator) finish(id string, epoch uint64, apply func(domain.Session) (domain.Session, error)) (domain.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.slots[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	s.busy = false

	if s.epoch != epoch {
		slog.Info("discarding stale gateway result", "session", id)
		return s.state, nil
	}

	next, err := apply(s.state)
	s.state = next
	return next, err
}

func noticeFor(err error) string {
	if errors.Is(err, domain.ErrGatewayUnavailable) {
		// Surface the service's own message verbatim when it sent one.
		msg := err.Error()
		if msg != domain.ErrGatewayUnavailable.Error() {
			return "Could not save your preferences: " + trimUnavailablePrefix(msg)
		}
		return NoticeUnavailable
	}
	return NoticeUnavailable
}

func trimUnavailablePrefix(msg string) string {
	return strings.TrimPrefix(msg, domain.ErrGatewayUnavailable.Error()+": ")
}

// displayName mirrors the entry form's behavior: a blank name falls
// back to the local part of the email.
func displayName(name, email string) string {
	if name != "" {
		return name
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
