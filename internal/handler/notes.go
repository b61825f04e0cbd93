package handler

import (
	"errors"
	"net/http"

	"github.com/devdiary/devdiary-go/internal/model"
	"github.com/devdiary/devdiary-go/internal/service"
)

// NoteHandler serves the current user's diary.
type NoteHandler struct {
	notes  *service.NoteService
	render *Renderer
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes *service.NoteService, render *Renderer) *NoteHandler {
	return &NoteHandler{notes: notes, render: render}
}

// HandleList handles GET /notes.
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request, user *model.User) {
	notes, err := h.notes.ListByOwner(r.Context(), user)
	if err != nil {
		h.render.ServerError(w, r, err)
		return
	}

	h.render.HTML(w, r, http.StatusOK, "notes.html", PageData{User: user, Notes: notes})
}

// HandleCreate handles POST /notes. Success redirects back to the list so
// a browser refresh does not resubmit.
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request, user *model.User) {
	if !parseForm(w, r) {
		return
	}

	req := model.NoteRequest{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Content:  r.PostFormValue("content"),
	}

	if _, err := h.notes.Create(r.Context(), user, req); err != nil {
		if !errors.Is(err, service.ErrValidation) {
			h.render.ServerError(w, r, err)
			return
		}

		notes, lerr := h.notes.ListByOwner(r.Context(), user)
		if lerr != nil {
			h.render.ServerError(w, r, lerr)
			return
		}

		h.render.HTML(w, r, http.StatusBadRequest, "notes.html", PageData{
			User:  user,
			Notes: notes,
			Error: sentence(err),
			Form: map[string]string{
				"title":    req.Title,
				"subtitle": req.Subtitle,
				"content":  req.Content,
			},
		})
		return
	}

	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}
