package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/devdiary/devdiary-go/internal/crypto"
	"github.com/devdiary/devdiary-go/internal/model"
	"github.com/devdiary/devdiary-go/internal/repository"
)

// UserStore is the persistence the credential store needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService registers users and verifies their credentials.
type AuthService struct {
	users  UserStore
	hasher *crypto.Hasher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *crypto.Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register validates the form, rejects taken usernames and emails, and
// stores a new user with an Argon2id password hash.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if err := validateRegistration(username, email, req.Password); err != nil {
		return nil, err
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	taken, err = s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	// The pre-checks above race with concurrent registrations; the unique
	// indexes decide.
	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrDuplicateUsername
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// Authenticate returns the user matching username and password. Unknown
// users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Spend the same Argon2 work as a real check.
			_, _ = s.hasher.Verify(password, s.dummy())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password for user %d: %w", user.ID, err)
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("devdiary-dummy-password")
	})
	return s.dummyHash
}

func validateRegistration(username, email, password string) error {
	switch {
	case username == "":
		return ErrUsernameRequired
	case utf8.RuneCountInString(username) > maxUsernameLen:
		return ErrUsernameTooLong
	case email == "":
		return ErrEmailRequired
	case utf8.RuneCountInString(email) > maxEmailLen:
		return ErrEmailTooLong
	case password == "":
		return ErrPasswordRequired
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailInvalid
	}

	return nil
}
