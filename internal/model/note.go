package model

import "time"

// Note is a diary entry. UserID is set on creation and never changes.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Subtitle  string // empty when absent; stored as NULL
	Text      string
	CreatedAt time.Time
}

// NoteRequest holds the submitted note form.
type NoteRequest struct {
	Title    string
	Subtitle string
	Content  string
}
