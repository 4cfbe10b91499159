package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/auth"
	"quotegen/sessions"
	"quotegen/templates"
)

// HandleLoginPage renders the credential form.
func HandleLoginPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.Layout("Sign In", templates.LoginPage("")).Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin checks the submitted pair against the fixed credential.
// Success sets the auth cookie and redirects to the form; failure re-renders
// the login view with an inline error and sets no cookie.
func HandleLogin(creds *auth.Credentials) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		username := e.Request.FormValue("username")
		password := e.Request.FormValue("password")

		if !creds.Verify(username, password) {
			log.Printf("login: failed attempt for user %q", username)
			e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
			e.Response.WriteHeader(http.StatusUnauthorized)
			return templates.Layout("Sign In", templates.LoginPage("Invalid username or password")).
				Render(e.Request.Context(), e.Response)
		}

		setAuthCookie(e)
		return e.Redirect(http.StatusFound, "/quote")
	}
}

// HandleLogout clears the auth cookie, drops the editing session and
// redirects to login.
func HandleLogout(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clearAuthCookie(e)
		if cookie, err := e.Request.Cookie(sessions.CookieName); err == nil && cookie.Value != "" {
			store.Drop(cookie.Value)
		}
		return e.Redirect(http.StatusFound, "/login")
	}
}
