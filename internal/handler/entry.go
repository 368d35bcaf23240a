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

// EntryHandler handles the entry screen's login, signup, and the
// global logout transition.
type EntryHandler struct {
	sessions *service.Orchestrator
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(sessions *service.Orchestrator) *EntryHandler {
	return &EntryHandler{sessions: sessions}
}

// HandleLogin processes a sign-in submission.
// POST /login with signals {"name":"...","email":"...","password":"..."}
// On success the browser is sent to the recommendations screen; on an
// unknown email or an unreachable service the inline notice is patched
// and the session stays on the entry screen.
func (h *EntryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}

	sse := datastar.NewSSE(w, r)

	if req.Email == "" {
		sse.PatchElementTempl(view.EntryNotice("Please enter your email address."))
		return
	}

	id := SessionIDFromContext(r.Context())
	state, err := h.sessions.Login(r.Context(), id, req.Name, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrBusy) {
			slog.Error("login", "error", err)
		}
		sse.PatchElementTempl(view.EntryNotice(state.Notice()))
		return
	}

	sse.Redirect("/recommendations")
}

// HandleSignup processes a create-account submission. No server call
// happens here; the session moves to the questionnaire where the
// preferences are collected first.
// POST /signup with signals {"name":"...","email":"...","password":"..."}
func (h *EntryHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}

	sse := datastar.NewSSE(w, r)

	if req.Email == "" {
		sse.PatchElementTempl(view.EntryNotice("Please enter your email address."))
		return
	}

	id := SessionIDFromContext(r.Context())
	state, err := h.sessions.Signup(id, req.Name, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrBusy) {
			slog.Error("signup", "error", err)
		}
		notice := state.Notice()
		if notice == "" {
			notice = "Something went wrong. Please try again."
		}
		sse.PatchElementTempl(view.EntryNotice(notice))
		return
	}

	sse.Redirect("/questionnaire")
}

// HandleLogout discards the session's identity, preferences, and
// courses and returns to the entry screen. Reachable from any screen.
// POST /logout
func (h *EntryHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(SessionIDFromContext(r.Context()))

	sse := datastar.NewSSE(w, r)
	sse.Redirect("/")
}
