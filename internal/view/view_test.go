package view

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pmendys/course-match/internal/domain"
	"github.com/pmendys/course-match/internal/service"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{950, "950"},
		{1000, "1k"},
		{125000, "125k"},
		{1500000, "1.5M"},
	}
	for _, c := range cases {
		if got := formatCount(c.n); got != c.want {
			t.Errorf("formatCount(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestCourseCard_EscapesUntrustedFields(t *testing.T) {
	var sb strings.Builder
	card := CourseCard(domain.Course{
		Title:   `<script>alert("x")</script>`,
		Subject: "Data Science",
		URL:     "https://example.com/c1",
	})
	if err := card.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("title must be escaped: %s", out)
	}
	if !strings.Contains(out, "https://example.com/c1") {
		t.Fatalf("expected the course URL in the card: %s", out)
	}
}

func TestEntryPage_ShowsFeaturedAndNotice(t *testing.T) {
	var sb strings.Builder
	page := EntryPage(
		[]domain.Course{{Title: "Featured Course", URL: "https://example.com"}},
		"No account found with this email. Please sign up.",
	)
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Featured Course") {
		t.Fatal("expected the featured course on the entry page")
	}
	if !strings.Contains(out, "Please sign up.") {
		t.Fatal("expected the notice on the entry page")
	}
}

func TestQuestionnairePage_RendersEveryStep(t *testing.T) {
	var sb strings.Builder
	steps := service.QuestionnaireSteps()

	if err := QuestionnairePage("Ana", steps, "").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	for _, s := range steps {
		if !strings.Contains(out, templ.EscapeString(s.Prompt)) {
			t.Fatalf("expected prompt %q on the page", s.Prompt)
		}
	}
	if !strings.Contains(out, "Ana") {
		t.Fatal("expected the greeting to carry the name")
	}
}

func TestRecommendationsPage_ListsCoursesInOrder(t *testing.T) {
	var sb strings.Builder
	prefs := domain.Preferences{
		Interests:      []string{"Data Science"},
		SkillLevel:     domain.SkillBeginner,
		TimeCommitment: domain.TimeFiveToTen,
		LearningGoal:   domain.GoalSkillUpgrade,
	}
	courses := []domain.Course{
		{ID: "c1", Title: "Top Pick", URL: "https://example.com/c1"},
		{ID: "c2", Title: "Runner Up", URL: "https://example.com/c2"},
	}

	if err := RecommendationsPage("Ana", prefs, courses).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	first := strings.Index(out, "Top Pick")
	second := strings.Index(out, "Runner Up")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected courses rendered in received order, got positions %d and %d", first, second)
	}
}

func TestRecommendationsPage_EmptyList(t *testing.T) {
	var sb strings.Builder
	prefs := domain.Preferences{
		Interests:      []string{"Underwater Basket Weaving"},
		SkillLevel:     domain.SkillBeginner,
		TimeCommitment: domain.TimeFiveToTen,
		LearningGoal:   domain.GoalHobby,
	}

	if err := RecommendationsPage("Ana", prefs, nil).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "No courses matched") {
		t.Fatal("expected the empty-result message")
	}
}
