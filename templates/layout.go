// Package templates renders the application's HTML as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// esc HTML-escapes user-controlled text before it is written into markup.
func esc(s string) string {
	return templ.EscapeString(s)
}

// component wraps a render function as a templ.Component.
func component(f func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return f(w)
	})
}

// Layout wraps a body component in the page skeleton with HTMX and the
// app's static assets.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&b, "<title>%s</title>", esc(title))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/app.css\">")
		b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\"></script>")
		b.WriteString("</head><body>")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<div id=\"toast-container\"></div><script src=\"/static/app.js\"></script></body></html>")
		return err
	})
}
