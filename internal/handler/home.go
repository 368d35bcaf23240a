package handler

import (
	"net/http"

	"github.com/pmendys/course-match/internal/domain"
	"github.com/pmendys/course-match/internal/service"
	"github.com/pmendys/course-match/internal/view"
)

// HomeHandler serves the entry screen.
type HomeHandler struct {
	sessions *service.Orchestrator
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(sessions *service.Orchestrator) *HomeHandler {
	return &HomeHandler{sessions: sessions}
}

// HandleHome renders the entry screen, or redirects to the screen the
// session is actually on after a full page load mid-flow.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	state, err := h.sessions.Current(SessionIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if state.Screen() != domain.ScreenEntry {
		http.Redirect(w, r, screenPath(state.Screen()), http.StatusSeeOther)
		return
	}

	featured := h.sessions.Featured(r.Context())
	view.EntryPage(featured, state.Notice()).Render(r.Context(), w)
}

// screenPath maps a screen to its URL.
func screenPath(s domain.Screen) string {
	switch s {
	case domain.ScreenQuestionnaire:
		return "/questionnaire"
	case domain.ScreenRecommendations:
		return "/recommendations"
	}
	return "/"
}
