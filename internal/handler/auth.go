package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/devdiary/devdiary-go/internal/middleware"
	"github.com/devdiary/devdiary-go/internal/model"
	"github.com/devdiary/devdiary-go/internal/service"
)

const (
	msgRegistered         = "Registration successful! Please log in."
	msgLoggedOut          = "You have been logged out."
	msgInvalidCredentials = "Invalid username or password."
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *service.SessionService
	cookies  middleware.Cookies
	render   *Renderer
	log      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *service.SessionService, cookies middleware.Cookies, render *Renderer, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookies: cookies, render: render, log: log}
}

// HandleRegisterForm handles GET /register.
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request, user *model.User) {
	if user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "register.html", PageData{})
}

// HandleRegister handles POST /register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request, user *model.User) {
	if user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !parseForm(w, r) {
		return
	}

	req := model.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	created, err := h.auth.Register(r.Context(), req)
	if err != nil {
		data := PageData{Form: map[string]string{"username": req.Username, "email": req.Email}}

		switch {
		case errors.Is(err, service.ErrDuplicateUsername), errors.Is(err, service.ErrDuplicateEmail):
			data.Error = sentence(err)
			h.render.HTML(w, r, http.StatusConflict, "register.html", data)
		case errors.Is(err, service.ErrValidation):
			data.Error = sentence(err)
			h.render.HTML(w, r, http.StatusBadRequest, "register.html", data)
		default:
			h.render.ServerError(w, r, err)
		}
		return
	}

	h.log.Info("user registered", "user_id", created.ID, "username", created.Username)
	h.cookies.SetFlash(w, msgRegistered)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLoginForm handles GET /login.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request, user *model.User) {
	if user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "login.html", PageData{Next: r.URL.Query().Get("next")})
}

// HandleLogin handles POST /login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request, user *model.User) {
	if user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !parseForm(w, r) {
		return
	}

	// next may arrive in the form or still be on the query string.
	req := model.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		Remember: formBool(r.PostFormValue("remember_me")),
		Next:     r.FormValue("next"),
	}

	authed, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Info("login failed", "username", req.Username)
			h.render.HTML(w, r, http.StatusUnauthorized, "login.html", PageData{
				Error:    msgInvalidCredentials,
				Form:     map[string]string{"username": req.Username},
				Next:     req.Next,
				Remember: req.Remember,
			})
			return
		}
		h.render.ServerError(w, r, err)
		return
	}

	tok, err := h.sessions.Start(r.Context(), authed, req.Remember)
	if err != nil {
		h.render.ServerError(w, r, err)
		return
	}

	h.log.Info("user logged in", "user_id", authed.ID, "remember", req.Remember)
	h.cookies.SetSession(w, tok)
	http.Redirect(w, r, safeNext(req.Next), http.StatusSeeOther)
}

// HandleLogout handles GET /logout.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request, user *model.User) {
	if err := h.sessions.End(r.Context(), h.cookies.SessionToken(r)); err != nil {
		h.render.ServerError(w, r, err)
		return
	}

	h.log.Info("user logged out", "user_id", user.ID)
	h.cookies.ClearSession(w)
	h.cookies.SetFlash(w, msgLoggedOut)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}
