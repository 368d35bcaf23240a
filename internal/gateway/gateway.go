// Package gateway is the boundary to the external account and
// recommendation service. It translates login/signup/recommend intents
// into HTTP requests against the service's JSON contract and
// normalizes outcomes into the domain error taxonomy: an unknown email
// is domain.ErrNotFound, any transport or server failure is
// domain.ErrGatewayUnavailable. It issues at most one network call per
// invocation and never retries on its own.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pmendys/course-match/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Config holds the external service contract details. RecommendPath is
// configurable because the endpoint serving ranked courses is not
// pinned down by the account contract.
type Config struct {
	BaseURL       string
	RecommendPath string
	Timeout       time.Duration
}

// Client issues requests against the account/recommendation service.
type Client struct {
	baseURL       string
	recommendPath string
	httpClient    *http.Client
}

// New creates a Client for the given service address. A zero Timeout
// falls back to 10 seconds; expiry surfaces as ErrGatewayUnavailable.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	recommendPath := cfg.RecommendPath
	if recommendPath == "" {
		recommendPath = "/recommend"
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		recommendPath: recommendPath,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Login asks the account service for the preferences stored against
// the given email. A 404 means no such account and returns
// domain.ErrNotFound so the caller can redirect the user toward
// signup; any other failure returns domain.ErrGatewayUnavailable.
func (c *Client) Login(ctx context.Context, email string) (domain.Preferences, error) {
	var resp struct {
		Preferences domain.Preferences `json:"preferences"`
	}
	err := c.postJSON(ctx, "/login", map[string]string{"email": email}, &resp, true)
	if err != nil {
		return domain.Preferences{}, err
	}
	return resp.Preferences, nil
}

// Signup persists a new account with an attached preferences record.
// The record must already be complete; an incomplete one is rejected
// here with a ValidationError rather than forwarded. Server-side
// failures, including a duplicate email, are opaque to the client and
// surfaced verbatim inside an ErrGatewayUnavailable.
func (c *Client) Signup(ctx context.Context, email, password string, prefs domain.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	body := struct {
		Email          string   `json:"email"`
		Password       string   `json:"password"`
		Interests      []string `json:"interests"`
		SkillLevel     string   `json:"skillLevel"`
		TimeCommitment string   `json:"timeCommitment"`
		LearningGoal   string   `json:"learningGoal"`
	}{
		Email:          email,
		Password:       password,
		Interests:      prefs.Interests,
		SkillLevel:     prefs.SkillLevel,
		TimeCommitment: prefs.TimeCommitment,
		LearningGoal:   prefs.LearningGoal,
	}
	return c.postJSON(ctx, "/signup", body, nil, false)
}

// Recommend fetches the ranked course list for a preferences record.
// The service takes the interests as free-text inputs; ranking happens
// entirely on its side and the returned order is preserved.
func (c *Client) Recommend(ctx context.Context, prefs domain.Preferences, n int) ([]domain.Course, error) {
	body := struct {
		Inputs []string `json:"inputs"`
		N      int      `json:"n"`
	}{Inputs: prefs.Interests, N: n}

	var resp struct {
		Recommendations []domain.Course `json:"recommendations"`
	}
	if err := c.postJSON(ctx, c.recommendPath, body, &resp, false); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// Courses fetches one page of the course catalog. It returns the page
// of courses and the catalog's total size.
func (c *Client) Courses(ctx context.Context, limit, page int) ([]domain.Course, int, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/courses?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build courses request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, serverMessage(res))
	}

	var resp struct {
		Total   int             `json:"total_courses"`
		Courses []domain.Course `json:"courses"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, 0, fmt.Errorf("%w: decode courses response: %v", domain.ErrGatewayUnavailable, err)
	}
	return resp.Courses, resp.Total, nil
}

// postJSON sends a JSON POST and decodes a 2xx response into out (out
// may be nil). A 404 maps to ErrNotFound only when notFound is set;
// the contract reserves that signal for /login's unknown-account case.
// Every other non-2xx response maps to ErrGatewayUnavailable.
func (c *Client) postJSON(ctx context.Context, path string, body, out any, notFound bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case notFound && res.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, serverMessage(res))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGatewayUnavailable, err)
	}
	return nil
}

// serverMessage extracts the error message from a failure response
// body, falling back to the HTTP status.
func serverMessage(res *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return res.Status
}
