package handler

import (
	"net/http"

	"github.com/pmendys/course-match/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Every
// screen and transition runs behind the session middleware so each
// browser maps to exactly one session.
func RegisterRoutes(mux *http.ServeMux, sessions *service.Orchestrator, signer *service.TokenSigner, cookieSecure bool) {
	home := NewHomeHandler(sessions)
	entry := NewEntryHandler(sessions)
	questionnaire := NewQuestionnaireHandler(sessions)
	recommendations := NewRecommendationsHandler(sessions)

	withSession := func(h http.HandlerFunc) http.Handler {
		return WithSession(sessions, signer, cookieSecure, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /", withSession(home.HandleHome))
	mux.Handle("POST /login", withSession(entry.HandleLogin))
	mux.Handle("POST /signup", withSession(entry.HandleSignup))
	mux.Handle("POST /logout", withSession(entry.HandleLogout))

	mux.Handle("GET /questionnaire", withSession(questionnaire.HandlePage))
	mux.Handle("POST /questionnaire/complete", withSession(questionnaire.HandleComplete))

	mux.Handle("GET /recommendations", withSession(recommendations.HandlePage))
	mux.Handle("POST /recommendations/retake", withSession(recommendations.HandleRetake))
}
