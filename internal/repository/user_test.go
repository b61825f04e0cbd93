package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdiary/devdiary-go/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	u := &model.User{Username: "alice", Email: "alice@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "alice@x.com", byName.Email)
	assert.Equal(t, "hash", byName.PasswordHash)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UniqueIndexes(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h"}))

	err := repo.Create(ctx, &model.User{Username: "alice", Email: "other@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	err = repo.Create(ctx, &model.User{Username: "bob", Email: "alice@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Only the first insert survived.
	ok, err := repo.UsernameExists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}))

	ok, err := repo.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EmailExists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EmailExists(ctx, "b@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_DBErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("db down"))
	err = repo.Create(context.Background(), &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorContains(t, err, "insert user: db down")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`)).
		WithArgs("alice").
		WillReturnError(errors.New("db down"))
	_, err = repo.GetByUsername(context.Background(), "alice")
	assert.ErrorContains(t, err, "select user: db down")
	assert.NotErrorIs(t, err, ErrUserNotFound)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`)).
		WithArgs("a@x.com").
		WillReturnError(errors.New("db down"))
	_, err = repo.EmailExists(context.Background(), "a@x.com")
	assert.ErrorContains(t, err, "check user exists")

	assert.NoError(t, mock.ExpectationsWereMet())
}
