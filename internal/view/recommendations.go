package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pmendys/course-match/internal/domain"
)

// RecommendationsPage is a pure projection of the session's identity
// name, preferences, and course list. Its two outward signals are the
// retake and logout controls; it holds no state and makes no calls of
// its own.
func RecommendationsPage(name string, prefs domain.Preferences, courses []domain.Course) templ.Component {
	return page("Your Recommendations — Course Match", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := siteHeader(true).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<main><section><h1>Recommended for you, %s</h1><p class="chips">`,
			templ.EscapeString(name),
		); err != nil {
			return err
		}
		for _, interest := range prefs.Interests {
			if _, err := fmt.Fprintf(w, `<span>%s</span>`, templ.EscapeString(interest)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<span>%s</span><span>%s hrs/week</span><span>%s</span></p>`+
				`<p><button class="ghost" data-on-click="@post('/recommendations/retake')">Retake questionnaire</button></p></section>`,
			templ.EscapeString(prefs.SkillLevel),
			templ.EscapeString(prefs.TimeCommitment),
			templ.EscapeString(prefs.LearningGoal),
		); err != nil {
			return err
		}

		if len(courses) == 0 {
			if _, err := io.WriteString(w, `<p>No courses matched your preferences yet. Try retaking the questionnaire with broader interests.</p>`); err != nil {
				return err
			}
		} else if err := courseGrid(courses).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	}))
}
