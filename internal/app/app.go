// Package app assembles the DevDiary HTTP application from its parts.
package app

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/devdiary/devdiary-go/internal/config"
	"github.com/devdiary/devdiary-go/internal/crypto"
	"github.com/devdiary/devdiary-go/internal/handler"
	"github.com/devdiary/devdiary-go/internal/middleware"
	"github.com/devdiary/devdiary-go/internal/repository"
	"github.com/devdiary/devdiary-go/internal/service"
)

// App owns the stores, services and router. Build one with New; there is
// no package-level state.
type App struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Notes    *service.NoteService

	router http.Handler
}

// Option tweaks an App before the router is built.
type Option func(*options)

type options struct {
	hasher *crypto.Hasher
}

// WithHasher overrides the password hasher derived from cfg.KDF.
func WithHasher(h *crypto.Hasher) Option {
	return func(o *options) { o.hasher = h }
}

// New wires an App over an already migrated database.
func New(cfg config.Config, db *sql.DB, log *slog.Logger, opts ...Option) (*App, error) {
	o := options{
		hasher: crypto.NewHasher(crypto.HashParams{
			Memory:      cfg.KDF.Memory,
			Iterations:  cfg.KDF.Time,
			Parallelism: cfg.KDF.Parallelism,
		}),
	}
	for _, opt := range opts {
		opt(&o)
	}

	users := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	a := &App{
		Auth: service.NewAuthService(users, o.hasher),
		Sessions: service.NewSessionService(sessionRepo, users, service.SessionConfig{
			Secret:      cfg.Session.Secret,
			TTL:         cfg.Session.TTL,
			RememberTTL: cfg.Session.RememberTTL,
		}, log),
		Notes: service.NewNoteService(noteRepo),
	}

	cookies := middleware.Cookies{SessionName: cfg.Session.CookieName, Secure: cfg.IsProduction()}

	render, err := handler.NewRenderer(cookies, log)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	gate := middleware.NewGate(a.Sessions, cookies, "/login", log)
	authHandler := handler.NewAuthHandler(a.Auth, a.Sessions, cookies, render, log)
	noteHandler := handler.NewNoteHandler(a.Notes, render)
	pageHandler := handler.NewPageHandler(render)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", handleHealth(db))

	r.Get("/home", gate.Optional(pageHandler.HandleHome))
	r.Get("/register", gate.Optional(authHandler.HandleRegisterForm))
	r.Post("/register", gate.Optional(authHandler.HandleRegister))
	r.Get("/login", gate.Optional(authHandler.HandleLoginForm))
	r.Post("/login", gate.Optional(authHandler.HandleLogin))

	r.Group(func(r chi.Router) {
		r.Get("/logout", gate.Protect(authHandler.HandleLogout))
		r.Get("/", gate.Protect(pageHandler.HandleBlog))
		r.Get("/notes", gate.Protect(noteHandler.HandleList))
		r.Post("/notes", gate.Protect(noteHandler.HandleCreate))
	})

	a.router = r
	return a, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func handleHealth(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
