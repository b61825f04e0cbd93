package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/devdiary/devdiary-go/internal/model"
)

// NoteStore persists notes scoped by owner.
type NoteStore interface {
	Create(ctx context.Context, note *model.Note) error
	ListByUser(ctx context.Context, userID int64) ([]model.Note, error)
}

// NoteService handles note business logic. Every operation takes the owner
// explicitly; there is no way to reach another user's notes.
type NoteService struct {
	notes NoteStore
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// Create validates req and stores a note owned by owner.
func (s *NoteService) Create(ctx context.Context, owner *model.User, req model.NoteRequest) (*model.Note, error) {
	title := strings.TrimSpace(req.Title)
	subtitle := strings.TrimSpace(req.Subtitle)

	switch {
	case title == "":
		return nil, ErrTitleRequired
	case utf8.RuneCountInString(title) > maxTitleLen:
		return nil, ErrTitleTooLong
	case utf8.RuneCountInString(subtitle) > maxSubtitleLen:
		return nil, ErrSubtitleTooLong
	case strings.TrimSpace(req.Content) == "":
		return nil, ErrContentRequired
	}

	note := &model.Note{
		UserID:   owner.ID,
		Title:    title,
		Subtitle: subtitle,
		Text:     req.Content,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// ListByOwner returns owner's notes, oldest first.
func (s *NoteService) ListByOwner(ctx context.Context, owner *model.User) ([]model.Note, error) {
	return s.notes.ListByUser(ctx, owner.ID)
}
