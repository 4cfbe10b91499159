package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"quotegen/auth"
	"quotegen/sessions"
	"quotegen/testhelpers"
)

func testCredentials(t *testing.T) *auth.Credentials {
	t.Helper()
	t.Setenv("QUOTEGEN_USERNAME", "admin")
	t.Setenv("QUOTEGEN_PASSWORD", "admin123")
	creds, err := auth.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials error: %v", err)
	}
	return creds
}

func TestHandleLoginPage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)

	if err := HandleLoginPage()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`name="username"`, `name="password"`, `action="/login"`)
}

func TestHandleLogin_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	req := formRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})

	if err := HandleLogin(testCredentials(t))(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/quote" {
		t.Errorf("expected redirect to /quote, got %q", loc)
	}

	var authCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName {
			authCookie = c
		}
	}
	if authCookie == nil {
		t.Fatal("expected the auth cookie to be set")
	}
	if authCookie.Value != "true" {
		t.Errorf("expected auth=true, got %q", authCookie.Value)
	}
	if authCookie.MaxAge != 24*60*60 {
		t.Errorf("expected a one-day cookie, got MaxAge %d", authCookie.MaxAge)
	}
}

func TestHandleLogin_Failure(t *testing.T) {
	rec := httptest.NewRecorder()
	req := formRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})

	if err := HandleLogin(testCredentials(t))(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName {
			t.Error("expected no auth cookie on failure")
		}
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Invalid username or password")
}

func TestHandleLogout(t *testing.T) {
	store := sessions.NewStore()
	cookie, _ := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "true"})

	if err := HandleLogout(store)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the auth cookie to be expired")
	}

	if _, ok := store.Get(cookie.Value); ok {
		t.Error("expected the editing session to be dropped")
	}
}
