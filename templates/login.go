package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPage renders the credential form. A non-empty errMsg is shown
// inline above the fields.
func LoginPage(errMsg string) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := io.WriteString(w, "<div class=\"login-card\"><h1>Quotation Builder</h1>"); err != nil {
			return err
		}
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, "<p class=\"error\" role=\"alert\">%s</p>", esc(errMsg)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			"<form method=\"post\" action=\"/login\">"+
				"<label>Username<input type=\"text\" name=\"username\" autofocus></label>"+
				"<label>Password<input type=\"password\" name=\"password\"></label>"+
				"<button type=\"submit\">Sign In</button>"+
				"</form></div>")
		return err
	})
}
