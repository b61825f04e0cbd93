package handler

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/devdiary/devdiary-go/internal/model"
	"github.com/devdiary/devdiary-go/internal/service"
)

// PageHandler serves the static pages.
type PageHandler struct {
	render *Renderer
}

func NewPageHandler(render *Renderer) *PageHandler {
	return &PageHandler{render: render}
}

// HandleHome handles GET /home.
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request, user *model.User) {
	if user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "home.html", PageData{})
}

// HandleBlog handles GET /.
func (h *PageHandler) HandleBlog(w http.ResponseWriter, r *http.Request, user *model.User) {
	h.render.HTML(w, r, http.StatusOK, "blog.html", PageData{User: user})
}

// sentence turns an error message into a user-facing sentence, dropping the
// "validation failed: " prefix.
func sentence(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	msg = strings.TrimPrefix(msg, service.ErrValidation.Error()+": ")

	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
