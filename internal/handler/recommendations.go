package handler

import (
	"net/http"

	"github.com/pmendys/course-match/internal/domain"
	"github.com/pmendys/course-match/internal/service"
	"github.com/pmendys/course-match/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// RecommendationsHandler serves the recommendations screen and its
// retake transition.
type RecommendationsHandler struct {
	sessions *service.Orchestrator
}

// NewRecommendationsHandler creates a new RecommendationsHandler.
func NewRecommendationsHandler(sessions *service.Orchestrator) *RecommendationsHandler {
	return &RecommendationsHandler{sessions: sessions}
}

// HandlePage renders the recommendation list for the active session.
// The screen is only reachable with an identity and a complete
// preferences record; any other session state redirects away.
func (h *RecommendationsHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Current(SessionIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if state.Screen() != domain.ScreenRecommendations {
		http.Redirect(w, r, screenPath(state.Screen()), http.StatusSeeOther)
		return
	}

	view.RecommendationsPage(state.Identity().Name, state.Preferences(), state.Courses()).Render(r.Context(), w)
}

// HandleRetake clears the session's preferences and returns to the
// questionnaire. The stored record is untouched until the new one is
// saved over it.
// POST /recommendations/retake
func (h *RecommendationsHandler) HandleRetake(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if _, err := h.sessions.Retake(SessionIDFromContext(r.Context())); err != nil {
		sse.Redirect("/")
		return
	}
	sse.Redirect("/questionnaire")
}
