package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pmendys/course-match/internal/domain"
	"github.com/pmendys/course-match/internal/handler"
	"github.com/pmendys/course-match/internal/service"
)

// fakeGateway is an in-memory account service for handler tests.
type fakeGateway struct {
	accounts map[string]domain.Preferences
}

func (g *fakeGateway) Login(_ context.Context, email string) (domain.Preferences, error) {
	prefs, ok := g.accounts[email]
	if !ok {
		return domain.Preferences{}, domain.ErrNotFound
	}
	return prefs, nil
}

func (g *fakeGateway) Signup(_ context.Context, email, _ string, prefs domain.Preferences) error {
	if g.accounts == nil {
		g.accounts = make(map[string]domain.Preferences)
	}
	g.accounts[email] = prefs
	return nil
}

func (g *fakeGateway) Recommend(context.Context, domain.Preferences, int) ([]domain.Course, error) {
	return []domain.Course{{ID: "c1", Title: "Data Science Bootcamp", Subject: "Data Science"}}, nil
}

func (g *fakeGateway) Courses(context.Context, int, int) ([]domain.Course, int, error) {
	return []domain.Course{{ID: "c1", Title: "Data Science Bootcamp"}}, 1, nil
}

const testSecret = "handler-test-secret-key-32-chars!"

func newTestApp(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	mux := http.NewServeMux()
	orch := service.NewOrchestrator(&fakeGateway{})
	handler.RegisterRoutes(mux, orch, service.NewTokenSigner(testSecret), false)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	res, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, string(body)
}

func postSignals(t *testing.T, client *http.Client, url string, signals any) (*http.Response, string) {
	t.Helper()
	payload, err := json.Marshal(signals)
	if err != nil {
		t.Fatalf("marshal signals: %v", err)
	}
	res, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, string(body)
}

func TestHealthz(t *testing.T) {
	srv, client := newTestApp(t)

	res, _ := get(t, client, srv.URL+"/healthz")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}

func TestHome_RendersEntryAndSetsSessionCookie(t *testing.T) {
	srv, client := newTestApp(t)

	res, body := get(t, client, srv.URL+"/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "Sign In") {
		t.Fatal("expected the entry screen")
	}

	var hasSession bool
	for _, c := range res.Cookies() {
		if c.Name == "session_token" && c.Value != "" && c.HttpOnly {
			hasSession = true
		}
	}
	if !hasSession {
		t.Fatal("expected an HttpOnly session cookie")
	}
}

func TestHome_UnknownPathIs404(t *testing.T) {
	srv, client := newTestApp(t)

	res, _ := get(t, client, srv.URL+"/nope")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv, client := newTestApp(t)

	res, _ := get(t, client, srv.URL+"/healthz")
	if got := res.Header.Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected X-Frame-Options DENY, got %q", got)
	}
	if got := res.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
}

func TestQuestionnaire_RedirectsWhenNotOnThatScreen(t *testing.T) {
	srv, client := newTestApp(t)

	get(t, client, srv.URL+"/") // establish a session on the entry screen

	res, _ := get(t, client, srv.URL+"/questionnaire")
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestLogin_UnknownEmailPatchesNotice(t *testing.T) {
	srv, client := newTestApp(t)
	get(t, client, srv.URL+"/")

	res, body := postSignals(t, client, srv.URL+"/login", map[string]string{
		"email": "nobody@x.com", "password": "p",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 SSE response, got %d", res.StatusCode)
	}
	if !strings.Contains(body, service.NoticeNoAccount) {
		t.Fatalf("expected the no-account notice in the patch, got: %s", body)
	}
	if strings.Contains(body, "/recommendations") {
		t.Fatal("a failed login must not redirect")
	}
}

func TestLogin_MissingEmailPatchesNotice(t *testing.T) {
	srv, client := newTestApp(t)
	get(t, client, srv.URL+"/")

	_, body := postSignals(t, client, srv.URL+"/login", map[string]string{"password": "p"})
	if !strings.Contains(body, "Please enter your email address.") {
		t.Fatalf("expected the missing-email prompt, got: %s", body)
	}
}

func TestSignupFlow_EndToEnd(t *testing.T) {
	srv, client := newTestApp(t)
	get(t, client, srv.URL+"/")

	// Signup moves to the questionnaire without a server call.
	_, body := postSignals(t, client, srv.URL+"/signup", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "s3cret",
	})
	if !strings.Contains(body, "/questionnaire") {
		t.Fatalf("expected redirect to the questionnaire, got: %s", body)
	}

	res, page := get(t, client, srv.URL+"/questionnaire")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected the questionnaire page, got %d", res.StatusCode)
	}
	if !strings.Contains(page, "Ana") {
		t.Fatal("expected the questionnaire greeting to carry the name")
	}

	// Completing with a full record persists and advances.
	_, body = postSignals(t, client, srv.URL+"/questionnaire/complete", map[string]any{
		"interests":      []string{"Data Science"},
		"skillLevel":     domain.SkillBeginner,
		"timeCommitment": domain.TimeFiveToTen,
		"learningGoal":   domain.GoalSkillUpgrade,
	})
	if !strings.Contains(body, "/recommendations") {
		t.Fatalf("expected redirect to recommendations, got: %s", body)
	}

	res, page = get(t, client, srv.URL+"/recommendations")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected the recommendations page, got %d", res.StatusCode)
	}
	if !strings.Contains(page, "Data Science Bootcamp") {
		t.Fatal("expected the recommended course on the page")
	}
}

func TestComplete_IncompleteAnswersStayOnQuestionnaire(t *testing.T) {
	srv, client := newTestApp(t)
	get(t, client, srv.URL+"/")
	postSignals(t, client, srv.URL+"/signup", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "s3cret",
	})

	_, body := postSignals(t, client, srv.URL+"/questionnaire/complete", map[string]any{
		"interests": []string{}, "skillLevel": "", "timeCommitment": "", "learningGoal": "",
	})
	if !strings.Contains(body, "Please pick at least one interest.") {
		t.Fatalf("expected the interests prompt, got: %s", body)
	}

	// Still on the questionnaire.
	res, _ := get(t, client, srv.URL+"/questionnaire")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected to stay on the questionnaire, got %d", res.StatusCode)
	}
}

func TestLogout_ReturnsToEntry(t *testing.T) {
	srv, client := newTestApp(t)
	get(t, client, srv.URL+"/")
	postSignals(t, client, srv.URL+"/signup", map[string]string{
		"email": "ana@x.com", "password": "s3cret",
	})

	res, _ := postSignals(t, client, srv.URL+"/logout", map[string]string{})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 SSE response, got %d", res.StatusCode)
	}

	res, _ = get(t, client, srv.URL+"/questionnaire")
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected the session back on the entry screen, got %d", res.StatusCode)
	}
}
