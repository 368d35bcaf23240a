package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pmendys/course-match/internal/service"
)

// QuestionnairePage renders the guided questionnaire. Step sequencing
// happens client-side through the step signal; the answers are only
// submitted once, together, when the final step posts to
// /questionnaire/complete. Until then they live in the form's signals
// and are discarded on navigate-away.
func QuestionnairePage(name string, steps []service.QuestionnaireStep, notice string) templ.Component {
	return page("Questionnaire — Course Match", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := siteHeader(true).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<main data-signals="{step: 0, interests: [], skillLevel: '', timeCommitment: '', learningGoal: '', busy: false}">`,
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<section class="card"><h1>Hi %s, let's find your courses</h1><p>Answer a few quick questions so we can tailor recommendations to you.</p>`,
			templ.EscapeString(name),
		); err != nil {
			return err
		}

		last := len(steps) - 1
		for i, step := range steps {
			if err := questionnaireStep(i, step).Render(ctx, w); err != nil {
				return err
			}
		}

		if err := QuestionnaireNotice(notice).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<p><button class="ghost" data-show="$step > 0" data-on-click="$step = $step - 1">Back</button> `+
				`<button data-show="$step < %d" data-on-click="$step = $step + 1">Next</button> `+
				`<button data-show="$step == %d" data-on-click="@post('/questionnaire/complete')" data-indicator-busy data-attr-disabled="$busy">See My Recommendations</button></p>`,
			last, last,
		); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section></main>`)
		return err
	}))
}

// questionnaireStep renders one step, visible only while the step
// signal matches its index.
func questionnaireStep(index int, step service.QuestionnaireStep) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<fieldset data-show="$step == %d"><legend><h2>%s</h2></legend>`,
			index, templ.EscapeString(step.Prompt),
		); err != nil {
			return err
		}
		inputType := "radio"
		if step.Multi {
			inputType = "checkbox"
		}
		for _, opt := range step.Options {
			if _, err := fmt.Fprintf(w,
				`<label class="option"><input type="%s" value="%s" data-bind-%s>%s</label>`,
				inputType,
				templ.EscapeString(opt.Value),
				step.Key,
				templ.EscapeString(opt.Label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</fieldset>`)
		return err
	})
}

// QuestionnaireNotice is the inline message slot on the questionnaire
// screen, patched over SSE when saving preferences fails.
func QuestionnaireNotice(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="questionnaire-notice" class="notice">%s</p>`, templ.EscapeString(msg))
		return err
	})
}
