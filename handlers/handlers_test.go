package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/sessions"
	"quotegen/testhelpers"
)

// newTestRequestEvent wraps a request/recorder pair the way the router
// would before invoking a handler.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// seedSession installs a filled quotation in the store and returns the
// session cookie plus the live state.
func seedSession(t *testing.T, store *sessions.Store) (*http.Cookie, *services.State) {
	t.Helper()

	id, state := store.Create()
	*state = *testhelpers.FilledState(t)
	return &http.Cookie{Name: sessions.CookieName, Value: id}, state
}

// formRequest builds a urlencoded POST.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
