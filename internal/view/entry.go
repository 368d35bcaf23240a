package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pmendys/course-match/internal/domain"
)

// EntryPage renders the entry screen: hero copy, the featured course
// trio, and the combined login/signup form. The mode signal toggles
// between the two forms; busy gates the submit control while a
// login or signup request is outstanding.
func EntryPage(featured []domain.Course, notice string) templ.Component {
	return page("Course Match", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := siteHeader(false).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main data-signals="{mode: 'login', name: '', email: '', password: '', busy: false}">`); err != nil {
			return err
		}

		if _, err := io.WriteString(w,
			`<section><h1>Find Your Perfect Course Match</h1>`+
				`<p>Discover personalized course recommendations based on your interests, goals, and learning style.</p></section>`,
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section class="card">`+
			`<h2 data-show="$mode == 'login'">Welcome Back</h2>`+
			`<h2 data-show="$mode == 'signup'">Get Started</h2>`); err != nil {
			return err
		}

		// The form posts its signals; there is no classic form submit.
		if _, err := io.WriteString(w,
			`<div data-show="$mode == 'signup'"><label for="name">Full Name</label>`+
				`<input type="text" id="name" placeholder="John Doe" data-bind-name></div>`+
				`<label for="email">Email Address</label>`+
				`<input type="email" id="email" placeholder="you@example.com" data-bind-email>`,
		); err != nil {
			return err
		}
		if err := EntryNotice(notice).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<label for="password">Password</label>`+
				`<input type="password" id="password" data-bind-password>`+
				`<p><button data-show="$mode == 'login'" data-on-click="@post('/login')" data-indicator-busy data-attr-disabled="$busy">Sign In</button>`+
				`<button data-show="$mode == 'signup'" data-on-click="@post('/signup')" data-indicator-busy data-attr-disabled="$busy">Create Account</button></p>`+
				`<p><button class="ghost" data-on-click="$mode = $mode == 'login' ? 'signup' : 'login'">`+
				`<span data-show="$mode == 'login'">New here? Create an account</span>`+
				`<span data-show="$mode == 'signup'">Already have an account? Sign in</span>`+
				`</button></p></section>`,
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section><h2>Featured Courses</h2>`); err != nil {
			return err
		}
		if err := courseGrid(featured).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section></main>`)
		return err
	}))
}

// EntryNotice is the inline message slot on the entry screen. It is
// patched over SSE when a login attempt fails.
func EntryNotice(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="entry-notice" class="notice">%s</p>`, templ.EscapeString(msg))
		return err
	})
}
