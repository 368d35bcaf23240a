package accountsvc_test

import (
	"context"
	"testing"

	"github.com/pmendys/course-match/internal/accountsvc"
	"github.com/pmendys/course-match/internal/domain"
)

// memCourses is an in-memory CourseRepository for ranking tests.
type memCourses struct {
	courses []domain.Course
}

func (m *memCourses) Seed(_ context.Context, courses []domain.Course) error {
	m.courses = append(m.courses, courses...)
	return nil
}

func (m *memCourses) All(context.Context) ([]domain.Course, error) {
	return m.courses, nil
}

func (m *memCourses) List(_ context.Context, limit, offset int) ([]domain.Course, error) {
	if offset >= len(m.courses) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.courses) {
		end = len(m.courses)
	}
	return m.courses[offset:end], nil
}

func (m *memCourses) Count(context.Context) (int, error) {
	return len(m.courses), nil
}

func rankingCatalog() *memCourses {
	return &memCourses{courses: []domain.Course{
		{ID: "py-1", Title: "Python for Data Science", Subject: "Data Science", Level: "Beginner Level", RelevanceWeight: 0.9},
		{ID: "py-2", Title: "Advanced Python Data Science", Subject: "Data Science", Level: "Expert Level", RelevanceWeight: 0.2},
		{ID: "wd-1", Title: "Web Development Bootcamp", Subject: "Web Development", Level: "All Levels", RelevanceWeight: 0.8},
		{ID: "wd-2", Title: "Modern Web Development with React", Subject: "Web Development", Level: "Intermediate Level", RelevanceWeight: 0.5},
		{ID: "fin-1", Title: "Financial Analysis Fundamentals", Subject: "Business Finance", Level: "Beginner Level", RelevanceWeight: 0.6},
	}}
}

func TestRecommend_PopularityBreaksTies(t *testing.T) {
	rec := accountsvc.NewRecommender(rankingCatalog())

	courses, err := rec.Recommend(context.Background(), []string{"Data Science"}, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(courses) < 2 {
		t.Fatalf("expected both data science courses, got %v", courses)
	}
	// Both titles match the query equally; the heavier popularity
	// weight must come first.
	if courses[0].ID != "py-1" {
		t.Fatalf("expected py-1 first, got %s", courses[0].ID)
	}
	if courses[1].ID != "py-2" {
		t.Fatalf("expected py-2 second, got %s", courses[1].ID)
	}
}

func TestRecommend_InterleavesInputs(t *testing.T) {
	rec := accountsvc.NewRecommender(rankingCatalog())

	courses, err := rec.Recommend(context.Background(), []string{"Data Science", "Web Development"}, 4)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(courses) != 4 {
		t.Fatalf("expected 4 courses, got %d", len(courses))
	}
	// Round-robin merge: best data-science hit, best web hit, then the
	// runners-up in the same alternation.
	want := []string{"py-1", "wd-1", "py-2", "wd-2"}
	for i, id := range want {
		if courses[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s (all: %v)", i, id, courses[i].ID, courses)
		}
	}
}

func TestRecommend_ExcludesExactTitleInputs(t *testing.T) {
	rec := accountsvc.NewRecommender(rankingCatalog())

	courses, err := rec.Recommend(context.Background(), []string{"Web Development Bootcamp"}, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, c := range courses {
		if c.ID == "wd-1" {
			t.Fatalf("a title the user typed verbatim must not be recommended back: %v", courses)
		}
	}
	if len(courses) == 0 {
		t.Fatal("borrowed features should still surface similar courses")
	}
}

func TestRecommend_DeduplicatesAcrossInputs(t *testing.T) {
	rec := accountsvc.NewRecommender(rankingCatalog())

	courses, err := rec.Recommend(context.Background(), []string{"Data Science", "Python Data Science"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	seen := make(map[string]bool)
	for _, c := range courses {
		if seen[c.ID] {
			t.Fatalf("course %s appears twice: %v", c.ID, courses)
		}
		seen[c.ID] = true
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	rec := accountsvc.NewRecommender(rankingCatalog())

	courses, err := rec.Recommend(context.Background(), []string{"", "   "}, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected no results for blank inputs, got %v", courses)
	}
}

func TestRecommend_RespectsLimit(t *testing.T) {
	rec := accountsvc.NewRecommender(rankingCatalog())

	courses, err := rec.Recommend(context.Background(), []string{"Data Science", "Web Development", "Finance"}, 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected exactly 2 courses, got %d", len(courses))
	}
}
