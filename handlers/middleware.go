package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/sessions"
)

// AuthCookieName is the client-side flag gating access to the form.
const AuthCookieName = "auth"

const authCookieMaxAge = 24 * 60 * 60 // 1 day

// RequireAuth wraps a handler with the cookie gate: requests without an
// auth=true cookie are redirected to the login view.
func RequireAuth(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(AuthCookieName)
		if err != nil || cookie.Value != "true" {
			return e.Redirect(http.StatusFound, "/login")
		}
		return next(e)
	}
}

// setAuthCookie grants access for one day.
func setAuthCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "true",
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookie revokes access.
func clearAuthCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:   AuthCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// sessionState resolves the editing state for the request's session,
// creating a fresh session (and setting its cookie) when none exists.
func sessionState(e *core.RequestEvent, store *sessions.Store) *services.State {
	if cookie, err := e.Request.Cookie(sessions.CookieName); err == nil && cookie.Value != "" {
		if state, ok := store.Get(cookie.Value); ok {
			return state
		}
	}

	id, state := store.Create()
	http.SetCookie(e.Response, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}
