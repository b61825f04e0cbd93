package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devdiary/devdiary-go/internal/service"
)

func TestSafeNext(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/notes", "/notes"},
		{"/notes?x=1", "/notes?x=1"},
		{"notes", "/"},
		{"//evil.example", "/"},
		{"/\\evil.example", "/"},
		{"https://evil.example/notes", "/"},
		{"/notes\r\nSet-Cookie: x=1", "/"},
		{"/logout", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, safeNext(tt.in), "safeNext(%q)", tt.in)
	}
}

func TestFormBool(t *testing.T) {
	for _, v := range []string{"1", "on", "true", "yes", "y"} {
		assert.True(t, formBool(v), v)
	}
	for _, v := range []string{"", "0", "off", "false", "No"} {
		assert.False(t, formBool(v), v)
	}
}

func TestParseForm_TooLarge(t *testing.T) {
	body := "content=" + strings.Repeat("a", maxFormBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	assert.False(t, parseForm(rec, req))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSentence(t *testing.T) {
	assert.Equal(t, "Title is required.", sentence(service.ErrTitleRequired))
	assert.Equal(t, "Username is already taken.", sentence(service.ErrDuplicateUsername))
	assert.Equal(t, "Boom.", sentence(errors.New("boom")))
	assert.Equal(t, "", sentence(nil))
}
