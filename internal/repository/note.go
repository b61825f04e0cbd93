package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devdiary/devdiary-go/internal/model"
)

// NoteRepository handles note persistence. Every read is scoped by owner.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts note and sets its generated ID and creation time.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (user_id, title, subtitle, text, created_at) VALUES (?, ?, ?, ?, ?)`

	subtitle := sql.NullString{String: note.Subtitle, Valid: note.Subtitle != ""}
	createdAt := time.Now().UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(ctx, query, note.UserID, note.Title, subtitle, note.Text, createdAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	note.ID = id
	note.CreatedAt = createdAt
	return nil
}

// ListByUser returns the notes owned by userID, oldest first.
func (r *NoteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	query := `SELECT id, user_id, title, subtitle, text, created_at
		FROM notes WHERE user_id = ? ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var (
			n        model.Note
			subtitle sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &subtitle, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.Subtitle = subtitle.String
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}
