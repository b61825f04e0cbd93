package middleware

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/devdiary/devdiary-go/internal/model"
)

const flashCookieName = "devdiary_flash"

// Cookies writes and reads the session and flash cookies.
type Cookies struct {
	SessionName string
	Secure      bool
}

// SessionToken returns the raw session token carried by r, or "".
func (c Cookies) SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(c.SessionName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSession writes tok. Persistent tokens outlive the browser session.
func (c Cookies) SetSession(w http.ResponseWriter, tok model.SessionToken) {
	cookie := &http.Cookie{
		Name:     c.SessionName,
		Value:    tok.Value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if tok.Persistent {
		cookie.Expires = tok.ExpiresAt
		cookie.MaxAge = int(time.Until(tok.ExpiresAt).Seconds())
	}
	http.SetCookie(w, cookie)
}

func (c Cookies) ClearSession(w http.ResponseWriter) {
	c.expire(w, c.SessionName)
}

// SetFlash stores a one-shot message shown on the next rendered page.
func (c Cookies) SetFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
func (c Cookies) PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}
	c.expire(w, flashCookieName)

	msg, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(msg)
}

func (c Cookies) expire(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
