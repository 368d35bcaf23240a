package accountsvc

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/pmendys/course-match/internal/domain"
)

const defaultPageSize = 15

// API exposes the account service's HTTP contract.
type API struct {
	accounts    *AccountService
	recommender *Recommender
	courses     CourseRepository
	limiter     *TokenBucket
}

// NewAPI creates a new API.
func NewAPI(accounts *AccountService, recommender *Recommender, courses CourseRepository, limiter *TokenBucket) *API {
	return &API{accounts: accounts, recommender: recommender, courses: courses, limiter: limiter}
}

// RegisterRoutes sets up the contract's routes on the given mux.
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("POST /login", a.handleLogin)
	mux.HandleFunc("POST /signup", a.handleSignup)
	mux.HandleFunc("POST /recommend", a.handleRecommend)
	mux.HandleFunc("GET /courses", a.handleCourses)
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogin returns the preferences stored against an email.
// POST /login
// Request:  {"email":"..."}
// Response: {"preferences":{...}} or 404 when no account matches.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !a.allow(r) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Slow down.")
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	prefs, err := a.accounts.Login(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No account found for that email.")
			return
		}
		slog.Error("login account", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"preferences": prefs})
}

// handleSignup persists an account with its preferences. Resubmitting
// with the same credentials replaces the stored preferences.
// POST /signup
// Request: {"email","password","interests","skillLevel","timeCommitment","learningGoal"}
// Response: 201 {"status":"ok"}; 409 when the email is taken by
// someone else; 422 on an incomplete preferences record.
func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	if !a.allow(r) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Slow down.")
		return
	}

	var req struct {
		Email          string   `json:"email"`
		Password       string   `json:"password"`
		Interests      []string `json:"interests"`
		SkillLevel     string   `json:"skillLevel"`
		TimeCommitment string   `json:"timeCommitment"`
		LearningGoal   string   `json:"learningGoal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	prefs := domain.Preferences{
		Interests:      req.Interests,
		SkillLevel:     req.SkillLevel,
		TimeCommitment: req.TimeCommitment,
		LearningGoal:   req.LearningGoal,
	}

	_, err := a.accounts.Signup(r.Context(), req.Email, req.Password, prefs)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "An account with that email already exists.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("signup account", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// handleRecommend ranks catalog courses for the given inputs.
// POST /recommend
// Request:  {"inputs":["Data Science", ...], "n": 10}
// Response: {"recommendations":[Course...]}
func (a *API) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Inputs []string `json:"inputs"`
		N      int      `json:"n"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.N <= 0 {
		req.N = 10
	}

	courses, err := a.recommender.Recommend(r.Context(), req.Inputs, req.N)
	if err != nil {
		slog.Error("recommend courses", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if courses == nil {
		courses = []domain.Course{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendations": courses})
}

// handleCourses returns one page of the catalog.
// GET /courses?limit=15&page=1
func (a *API) handleCourses(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultPageSize)
	page := queryInt(r, "page", 1)
	if limit < 1 {
		limit = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	courses, err := a.courses.List(r.Context(), limit, (page-1)*limit)
	if err != nil {
		slog.Error("list courses", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	total, err := a.courses.Count(r.Context())
	if err != nil {
		slog.Error("count courses", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if courses == nil {
		courses = []domain.Course{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"page":          page,
		"limit":         limit,
		"total_courses": total,
		"courses":       courses,
	})
}

// allow rate-limits by client IP.
func (a *API) allow(r *http.Request) bool {
	if a.limiter == nil {
		return true
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return a.limiter.Allow(host)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
