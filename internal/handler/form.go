package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const maxFormBytes = 1 << 20 // 1MB

// parseForm reads a size-limited form body. On failure it has already
// written the response.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// formBool treats any non-empty value other than an explicit false as set,
// the way HTML checkboxes submit.
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}

// safeNext returns next when it is a local path, otherwise "/".
func safeNext(next string) string {
	if next == "" || next[0] != '/' || strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "/logout" {
		return "/"
	}

	return next
}
