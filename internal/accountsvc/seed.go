package accountsvc

import (
	"context"
	"fmt"

	"github.com/pmendys/course-match/internal/domain"
)

// SeedCatalog loads the built-in course catalog into the repository.
// Seeding is idempotent; existing course ids are left untouched.
func SeedCatalog(ctx context.Context, courses CourseRepository) error {
	if err := courses.Seed(ctx, catalogCourses); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

// catalogCourses is a small catalog in the shape of the Udemy course
// dataset. Popularity weights are subscriber counts normalized against
// the largest course.
var catalogCourses = []domain.Course{
	{ID: "wd-001", Title: "Modern Web Development with React & TypeScript", Subject: "Web Development", Level: "Beginner", Rating: 4.8, Subscribers: 125000, DurationHours: 12, URL: "https://www.udemy.com/course/the-complete-web-development-bootcamp/", RelevanceWeight: 0.65},
	{ID: "wd-002", Title: "The Complete JavaScript Course", Subject: "Web Development", Level: "All Levels", Rating: 4.7, Subscribers: 168000, DurationHours: 28, URL: "https://www.udemy.com/course/the-complete-javascript-course/", RelevanceWeight: 0.88},
	{ID: "wd-003", Title: "Build Responsive Websites with HTML and CSS", Subject: "Web Development", Level: "Beginner", Rating: 4.6, Subscribers: 97000, DurationHours: 21, URL: "https://www.udemy.com/course/design-and-develop-a-killer-website-with-html5-and-css3/", RelevanceWeight: 0.51},
	{ID: "ds-001", Title: "Data Science & Machine Learning Bootcamp", Subject: "Data Science", Level: "Intermediate", Rating: 4.9, Subscribers: 192000, DurationHours: 15, URL: "https://www.udemy.com/course/python-for-data-science-and-machine-learning-bootcamp/", RelevanceWeight: 1.0},
	{ID: "ds-002", Title: "Python for Data Analysis and Visualization", Subject: "Data Science", Level: "Beginner", Rating: 4.6, Subscribers: 88000, DurationHours: 17, URL: "https://www.udemy.com/course/learning-python-for-data-analysis-and-visualization/", RelevanceWeight: 0.46},
	{ID: "ml-001", Title: "Machine Learning A-Z: Hands-On Python", Subject: "Machine Learning", Level: "Intermediate", Rating: 4.7, Subscribers: 157000, DurationHours: 44, URL: "https://www.udemy.com/course/machinelearning/", RelevanceWeight: 0.82},
	{ID: "ml-002", Title: "Deep Learning with TensorFlow and Keras", Subject: "Machine Learning", Level: "Advanced", Rating: 4.8, Subscribers: 64000, DurationHours: 23, URL: "https://www.udemy.com/course/complete-guide-to-tensorflow-for-deep-learning-with-python/", RelevanceWeight: 0.33},
	{ID: "mo-001", Title: "iOS and Swift: The Complete App Development Bootcamp", Subject: "Mobile Development", Level: "Beginner", Rating: 4.8, Subscribers: 91000, DurationHours: 60, URL: "https://www.udemy.com/course/ios-13-app-development-bootcamp/", RelevanceWeight: 0.47},
	{ID: "mo-002", Title: "Flutter & Dart: Build Native Mobile Apps", Subject: "Mobile Development", Level: "Intermediate", Rating: 4.6, Subscribers: 77000, DurationHours: 41, URL: "https://www.udemy.com/course/learn-flutter-dart-to-build-ios-android-apps/", RelevanceWeight: 0.4},
	{ID: "cc-001", Title: "Cloud Computing on AWS, Azure & GCP", Subject: "Cloud Computing", Level: "Intermediate", Rating: 4.7, Subscribers: 84000, DurationHours: 10, URL: "https://www.udemy.com/course/aws-certified-solutions-architect-associate/", RelevanceWeight: 0.44},
	{ID: "cc-002", Title: "Docker and Kubernetes: The Practical Guide", Subject: "Cloud Computing", Level: "Intermediate", Rating: 4.7, Subscribers: 59000, DurationHours: 24, URL: "https://www.udemy.com/course/docker-kubernetes-the-practical-guide/", RelevanceWeight: 0.31},
	{ID: "gd-001", Title: "Graphic Design Masterclass: Learn Great Design", Subject: "Graphic Design", Level: "Beginner", Rating: 4.6, Subscribers: 52000, DurationHours: 16, URL: "https://www.udemy.com/course/graphic-design-masterclass-everything-you-need-to-know/", RelevanceWeight: 0.27},
	{ID: "bf-001", Title: "Business Finance Fundamentals: Accounting for Everyone", Subject: "Business Finance", Level: "Beginner", Rating: 4.4, Subscribers: 38000, DurationHours: 9, URL: "https://www.udemy.com/course/the-complete-financial-analyst-course/", RelevanceWeight: 0.2},
	{ID: "mi-001", Title: "Complete Guitar Lessons System: Beginner to Advanced", Subject: "Musical Instruments", Level: "All Levels", Rating: 4.7, Subscribers: 44000, DurationHours: 39, URL: "https://www.udemy.com/course/complete-guitar-system-beginner-to-advanced/", RelevanceWeight: 0.23},
	{ID: "mi-002", Title: "Piano for Beginners: Play Your First Songs", Subject: "Musical Instruments", Level: "Beginner", Rating: 4.5, Subscribers: 21000, DurationHours: 12, URL: "https://www.udemy.com/course/pianoforall-incredible-new-way-to-learn-piano-keyboard/", RelevanceWeight: 0.11},
}
