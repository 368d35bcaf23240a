package service

import "github.com/pmendys/course-match/internal/domain"

const featuredCount = 3

// fallbackFeatured is shown on the entry screen when the course
// catalog cannot be reached. The entry screen is the one screen that
// never fails on a gateway outage.
func fallbackFeatured() []domain.Course {
	return []domain.Course{
		{
			ID:              "feat-1",
			Title:           "Modern Web Development with React & TypeScript",
			Subject:         "Web Development",
			Level:           "Beginner",
			Rating:          4.8,
			Subscribers:     125000,
			DurationHours:   12,
			URL:             "https://www.udemy.com/course/the-complete-web-development-bootcamp/",
			RelevanceWeight: 0.9,
		},
		{
			ID:              "feat-2",
			Title:           "Cloud Computing on AWS, Azure & GCP",
			Subject:         "Cloud Computing",
			Level:           "Intermediate",
			Rating:          4.7,
			Subscribers:     84000,
			DurationHours:   10,
			URL:             "https://www.udemy.com/",
			RelevanceWeight: 0.85,
		},
		{
			ID:              "feat-3",
			Title:           "Data Science & Machine Learning Bootcamp",
			Subject:         "Data Science",
			Level:           "Intermediate",
			Rating:          4.9,
			Subscribers:     192000,
			DurationHours:   15,
			URL:             "https://www.udemy.com/",
			RelevanceWeight: 0.95,
		},
	}
}
