package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/devdiary/devdiary-go/internal/model"
	"github.com/devdiary/devdiary-go/internal/service"
)

const LoginRequiredMessage = "Please log in to access this page."

// Principal resolves a session token to its user.
type Principal interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// UserHandlerFunc is an HTTP handler that receives the resolved user
// explicitly. user is never nil behind Protect; behind Optional it is nil
// for anonymous visitors.
type UserHandlerFunc func(w http.ResponseWriter, r *http.Request, user *model.User)

// Gate guards routes that need a logged-in user.
type Gate struct {
	principal Principal
	cookies   Cookies
	loginPath string
	log       *slog.Logger
}

func NewGate(principal Principal, cookies Cookies, loginPath string, log *slog.Logger) *Gate {
	return &Gate{principal: principal, cookies: cookies, loginPath: loginPath, log: log}
}

// Protect runs h only for authenticated requests. Anonymous requests are
// redirected to the login page with the original URI in ?next=.
func (g *Gate) Protect(h UserHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := g.principal.Resolve(r.Context(), g.cookies.SessionToken(r))
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				g.log.Error("resolving session failed", "path", r.URL.Path, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if g.cookies.SessionToken(r) != "" {
				g.cookies.ClearSession(w)
			}
			g.cookies.SetFlash(w, LoginRequiredMessage)
			http.Redirect(w, r, g.loginPath+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}

		h(w, r, user)
	}
}

// Optional resolves the user when possible but never rejects the request.
func (g *Gate) Optional(h UserHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := g.principal.Resolve(r.Context(), g.cookies.SessionToken(r))
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				g.log.Warn("resolving session failed", "path", r.URL.Path, "error", err)
			}
			user = nil
		}

		h(w, r, user)
	}
}
