package domain

// Screen identifies which of the three screens a session is showing.
type Screen int

const (
	ScreenEntry Screen = iota
	ScreenQuestionnaire
	ScreenRecommendations
)

func (s Screen) String() string {
	switch s {
	case ScreenEntry:
		return "entry"
	case ScreenQuestionnaire:
		return "questionnaire"
	case ScreenRecommendations:
		return "recommendations"
	}
	return "unknown"
}

// Session is the single source of truth for one user's place in the
// flow: which screen is active and what data that screen has. It is a
// value; the transition methods return a new Session and never mutate
// the receiver, so every transition is testable in isolation.
//
// The screen tag decides which fields are meaningful: Entry carries
// nothing, Questionnaire carries an identity, Recommendations carries
// identity, complete preferences, and the courses to display. The
// transitions are the only way to move between those combinations, so
// a recommendations screen without preferences cannot be built.
type Session struct {
	screen   Screen
	identity Identity
	prefs    Preferences
	courses  []Course
	notice   string
}

// NewSession returns a session on the entry screen.
func NewSession() Session {
	return Session{screen: ScreenEntry}
}

func (s Session) Screen() Screen { return s.screen }

// Identity returns the active identity. It is the zero value on the
// entry screen.
func (s Session) Identity() Identity { return s.identity }

// Preferences returns the active preferences. They are only populated
// on the recommendations screen.
func (s Session) Preferences() Preferences { return s.prefs }

// Courses returns the courses to display, in received order.
func (s Session) Courses() []Course { return s.courses }

// Notice is the user-visible message attached to the current screen,
// or empty.
func (s Session) Notice() string { return s.notice }

// WithNotice attaches a user-visible message without changing screens.
func (s Session) WithNotice(msg string) Session {
	s.notice = msg
	return s
}

// ClearNotice removes any attached message.
func (s Session) ClearNotice() Session {
	s.notice = ""
	return s
}

// LoginSucceeded moves Entry to Recommendations after the account
// service returned the stored preferences and the ranked courses were
// fetched. The preferences must be complete; a partial record is never
// allowed onto the recommendations screen.
func (s Session) LoginSucceeded(id Identity, prefs Preferences, courses []Course) (Session, error) {
	if s.screen != ScreenEntry {
		return s, ErrInvalidTransition
	}
	if id.Email == "" {
		return s, ErrInvalidTransition
	}
	if err := prefs.Validate(); err != nil {
		return s, err
	}
	return Session{
		screen:   ScreenRecommendations,
		identity: id,
		prefs:    prefs,
		courses:  courses,
	}, nil
}

// SignupStarted moves Entry to Questionnaire. No server call has
// happened yet; preferences are not known until the questionnaire
// completes.
func (s Session) SignupStarted(id Identity) (Session, error) {
	if s.screen != ScreenEntry {
		return s, ErrInvalidTransition
	}
	if id.Email == "" {
		return s, ErrInvalidTransition
	}
	return Session{screen: ScreenQuestionnaire, identity: id}, nil
}

// QuestionnaireCompleted moves Questionnaire to Recommendations with a
// freshly collected, complete Preferences record. The caller must have
// persisted the record first; this transition only shapes state.
// A prior record from a retaken questionnaire is replaced, not merged.
func (s Session) QuestionnaireCompleted(prefs Preferences, courses []Course) (Session, error) {
	if s.screen != ScreenQuestionnaire {
		return s, ErrInvalidTransition
	}
	if err := prefs.Validate(); err != nil {
		return s, err
	}
	return Session{
		screen:   ScreenRecommendations,
		identity: s.identity,
		prefs:    prefs,
		courses:  courses,
	}, nil
}

// Retake moves Recommendations back to Questionnaire. The session's
// preferences and courses are cleared pending re-completion; the
// record held by the account service is untouched.
func (s Session) Retake() (Session, error) {
	if s.screen != ScreenRecommendations {
		return s, ErrInvalidTransition
	}
	return Session{screen: ScreenQuestionnaire, identity: s.identity}, nil
}

// Logout returns to the entry screen from any state, discarding
// identity, preferences, and displayed courses. It is the only way to
// leave the session entirely.
func (s Session) Logout() Session {
	return NewSession()
}
