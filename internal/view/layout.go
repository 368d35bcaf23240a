// Package view holds the templ components for the three screens.
// Components are written directly against the templ Component API;
// pages are assembled from small fragment components so handlers can
// patch fragments over SSE without re-rendering a whole screen.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

const baseStyles = `
:root { --ink: #1e1b4b; --accent: #4f46e5; --muted: #6b7280; --bg: #eef2ff; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: var(--ink); background: var(--bg); }
a { color: var(--accent); }
header.site { display: flex; align-items: center; justify-content: space-between; padding: 1rem 2rem; }
header.site .brand { font-weight: 700; color: var(--accent); font-size: 1.2rem; }
main { max-width: 64rem; margin: 0 auto; padding: 1rem 2rem 3rem; }
.notice { color: #b91c1c; font-weight: 500; padding: 0.25rem 0; min-height: 1.5rem; }
.card { background: #fff; border-radius: 1rem; box-shadow: 0 10px 25px rgba(30, 27, 75, 0.08); padding: 2rem; }
.course-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); gap: 1rem; }
.course { background: #fff; border-radius: 0.75rem; padding: 1.25rem; box-shadow: 0 4px 12px rgba(30, 27, 75, 0.06); }
.course h3 { margin: 0 0 0.5rem; font-size: 1rem; }
.course .meta { color: var(--muted); font-size: 0.85rem; }
button { background: var(--accent); color: #fff; border: 0; border-radius: 0.5rem; padding: 0.75rem 1.25rem; cursor: pointer; font-size: 1rem; }
button:disabled { opacity: 0.5; cursor: wait; }
button.ghost { background: transparent; color: var(--accent); }
label { display: block; margin: 0.5rem 0 0.25rem; }
input[type=text], input[type=email], input[type=password] { width: 100%; padding: 0.6rem 0.8rem; border: 1px solid #d1d5db; border-radius: 0.5rem; font-size: 1rem; }
fieldset { border: 0; padding: 0; margin: 1rem 0; }
.option { display: flex; gap: 0.5rem; align-items: center; padding: 0.4rem 0; }
.chips span { display: inline-block; background: #e0e7ff; border-radius: 999px; padding: 0.2rem 0.7rem; margin-right: 0.4rem; font-size: 0.85rem; }
`

// page wraps body content in the HTML shell shared by every screen.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><script type="module" src="%s"></script><style>%s</style></head><body>`,
			templ.EscapeString(title), datastarCDN, baseStyles,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// siteHeader renders the top bar. When loggedIn is set it includes the
// logout control, which is available from any screen.
func siteHeader(loggedIn bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="site"><span class="brand">Course Match</span>`); err != nil {
			return err
		}
		if loggedIn {
			if _, err := io.WriteString(w, `<button class="ghost" data-on-click="@post('/logout')">Log out</button>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</header>`)
		return err
	})
}
