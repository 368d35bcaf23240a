package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pmendys/course-match/internal/domain"
)

// CourseCard renders one course. Courses render in the order they
// were received; the list is pre-ranked by the recommendation service.
func CourseCard(c domain.Course) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<article class="course"><h3><a href="%s" target="_blank" rel="noopener">%s</a></h3><p class="meta">%s &middot; %s</p><p class="meta">&#9733; %.1f &middot; %s learners &middot; %.1f hours</p></article>`,
			templ.EscapeString(string(templ.URL(c.URL))),
			templ.EscapeString(c.Title),
			templ.EscapeString(c.Subject),
			templ.EscapeString(c.Level),
			c.Rating,
			formatCount(c.Subscribers),
			c.DurationHours,
		)
		return err
	})
}

// courseGrid renders a list of courses as a responsive grid.
func courseGrid(courses []domain.Course) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="course-grid">`); err != nil {
			return err
		}
		for _, c := range courses {
			if err := CourseCard(c).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// formatCount renders a subscriber count compactly (125000 -> "125k").
func formatCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprintf("%d", n)
}
