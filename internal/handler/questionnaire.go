package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pmendys/course-match/internal/domain"
	"github.com/pmendys/course-match/internal/service"
	"github.com/pmendys/course-match/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// QuestionnaireHandler serves the questionnaire screen and its
// completion transition.
type QuestionnaireHandler struct {
	sessions *service.Orchestrator
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler.
func NewQuestionnaireHandler(sessions *service.Orchestrator) *QuestionnaireHandler {
	return &QuestionnaireHandler{sessions: sessions}
}

// HandlePage renders the questionnaire, or redirects to the screen
// the session is actually on.
func (h *QuestionnaireHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Current(SessionIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if state.Screen() != domain.ScreenQuestionnaire {
		http.Redirect(w, r, screenPath(state.Screen()), http.StatusSeeOther)
		return
	}

	view.QuestionnairePage(state.Identity().Name, service.QuestionnaireSteps(), state.Notice()).Render(r.Context(), w)
}

// HandleComplete processes the questionnaire's final submission. The
// answers are assembled into a Preferences record, persisted through
// the account service, and only on success does the browser move to
// the recommendations screen. An incomplete record or a failed save
// patches the inline notice and keeps the questionnaire up, so the
// user's answers are never silently lost.
// POST /questionnaire/complete with signals
// {"interests":[...],"skillLevel":"...","timeCommitment":"...","learningGoal":"..."}
func (h *QuestionnaireHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Interests      []string `json:"interests"`
		SkillLevel     string   `json:"skillLevel"`
		TimeCommitment string   `json:"timeCommitment"`
		LearningGoal   string   `json:"learningGoal"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}

	sse := datastar.NewSSE(w, r)

	prefs, err := service.BuildPreferences(req.Interests, req.SkillLevel, req.TimeCommitment, req.LearningGoal)
	if err != nil {
		sse.PatchElementTempl(view.QuestionnaireNotice(validationMessage(err)))
		return
	}

	id := SessionIDFromContext(r.Context())
	state, err := h.sessions.Complete(r.Context(), id, prefs)
	if err != nil {
		if !errors.Is(err, domain.ErrBusy) {
			slog.Error("complete questionnaire", "error", err)
		}
		notice := state.Notice()
		if notice == "" {
			notice = service.NoticeUnavailable
		}
		sse.PatchElementTempl(view.QuestionnaireNotice(notice))
		return
	}

	sse.Redirect("/recommendations")
}

// validationMessage turns a ValidationError into the inline prompt
// shown next to the questionnaire controls.
func validationMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return "Please answer every question before continuing."
	}
	switch ve.Field {
	case "interests":
		return "Please pick at least one interest."
	case "skillLevel":
		return "Please choose your skill level."
	case "timeCommitment":
		return "Please choose your weekly time commitment."
	case "learningGoal":
		return "Please choose your learning goal."
	}
	return "Please answer every question before continuing."
}
