package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pmendys/course-match/internal/domain"
)

// CourseRepository implements accountsvc.CourseRepository using SQLite.
type CourseRepository struct {
	db *sql.DB
}

const courseColumns = "id, title, subject, level, rating, num_subscribers, duration_hours, url, popularity_weight"

// Seed inserts the given courses, skipping ids that already exist, so
// seeding on startup is idempotent.
func (r *CourseRepository) Seed(ctx context.Context, courses []domain.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range courses {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO courses (`+courseColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Subject, c.Level, c.Rating, c.Subscribers, c.DurationHours, c.URL, c.RelevanceWeight,
		)
		if err != nil {
			return fmt.Errorf("insert course %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

// All returns the whole catalog in insertion order.
func (r *CourseRepository) All(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

// List returns one page of the catalog.
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY rowid LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query courses page: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

// Count returns the catalog size.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

func scanCourses(rows *sql.Rows) ([]domain.Course, error) {
	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Subject, &c.Level, &c.Rating, &c.Subscribers, &c.DurationHours, &c.URL, &c.RelevanceWeight); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
