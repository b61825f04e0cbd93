package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdiary/devdiary-go/internal/model"
)

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSetSession_BrowserSession(t *testing.T) {
	c := Cookies{SessionName: "sess", Secure: true}
	rec := httptest.NewRecorder()
	c.SetSession(rec, model.SessionToken{Value: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	cookie := findCookie(t, rec, "sess")
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Zero(t, cookie.MaxAge)
	assert.True(t, cookie.Expires.IsZero())
}

func TestSetSession_Persistent(t *testing.T) {
	c := Cookies{SessionName: "sess"}
	rec := httptest.NewRecorder()
	c.SetSession(rec, model.SessionToken{Value: "tok", ExpiresAt: time.Now().Add(48 * time.Hour), Persistent: true})

	cookie := findCookie(t, rec, "sess")
	assert.Greater(t, cookie.MaxAge, int((47 * time.Hour).Seconds()))
}

func TestSessionToken(t *testing.T) {
	c := Cookies{SessionName: "sess"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", c.SessionToken(req))

	req.AddCookie(&http.Cookie{Name: "sess", Value: "tok"})
	assert.Equal(t, "tok", c.SessionToken(req))
}

func TestClearSession(t *testing.T) {
	c := Cookies{SessionName: "sess"}
	rec := httptest.NewRecorder()
	c.ClearSession(rec)

	cookie := findCookie(t, rec, "sess")
	assert.Less(t, cookie.MaxAge, 0)
	assert.Empty(t, cookie.Value)
}

func TestFlashRoundTrip(t *testing.T) {
	c := Cookies{SessionName: "sess"}
	rec := httptest.NewRecorder()
	c.SetFlash(rec, "Registration successful! Please log in.")

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(findCookie(t, rec, flashCookieName))

	rec2 := httptest.NewRecorder()
	assert.Equal(t, "Registration successful! Please log in.", c.PopFlash(rec2, req))

	cleared := findCookie(t, rec2, flashCookieName)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestPopFlash_NoneOrCorrupt(t *testing.T) {
	c := Cookies{SessionName: "sess"}

	assert.Equal(t, "", c.PopFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%"})
	assert.Equal(t, "", c.PopFlash(httptest.NewRecorder(), req))
}
