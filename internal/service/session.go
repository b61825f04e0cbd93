package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/devdiary/devdiary-go/internal/crypto"
	"github.com/devdiary/devdiary-go/internal/model"
	"github.com/devdiary/devdiary-go/internal/repository"
)

// SessionStore persists server-side sessions.
type SessionStore interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, userID int64, now time.Time) (int64, error)
}

// SessionConfig controls token signing and session lifetimes.
type SessionConfig struct {
	Secret      string
	TTL         time.Duration
	RememberTTL time.Duration
}

// SessionService binds session tokens to users.
//
//	Anonymous --Start--> Authenticated(user) --End / expiry--> Anonymous
type SessionService struct {
	sessions SessionStore
	users    UserStore
	cfg      SessionConfig
	log      *slog.Logger
	now      func() time.Time
}

func NewSessionService(sessions SessionStore, users UserStore, cfg SessionConfig, log *slog.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Start opens a session for user. remember selects the long lifetime and a
// persistent cookie; it does not change what the session is bound to.
func (s *SessionService) Start(ctx context.Context, user *model.User, remember bool) (model.SessionToken, error) {
	now := s.now().UTC().Truncate(time.Second)

	ttl := s.cfg.TTL
	if remember {
		ttl = s.cfg.RememberTTL
	}

	if n, err := s.sessions.DeleteExpired(ctx, user.ID, now); err != nil {
		s.log.Warn("pruning expired sessions failed", "user_id", user.ID, "error", err)
	} else if n > 0 {
		s.log.Debug("pruned expired sessions", "user_id", user.ID, "count", n)
	}

	sess := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Remember:  remember,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return model.SessionToken{}, err
	}

	value, err := crypto.SignSessionToken(sess.ID, user.ID, s.cfg.Secret, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return model.SessionToken{}, fmt.Errorf("sign session token: %w", err)
	}

	return model.SessionToken{
		Value:      value,
		ExpiresAt:  sess.ExpiresAt,
		Persistent: remember,
	}, nil
}

// Resolve returns the user bound to token, or ErrUnauthenticated when the
// token is absent, forged, expired, or its session has ended.
func (s *SessionService) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := crypto.ParseSessionToken(token, s.cfg.Secret)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if sess.UserID != claims.UserID || sess.Expired(s.now()) {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

// End invalidates the session named by token. It is a no-op for empty,
// invalid or already-ended tokens.
func (s *SessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := crypto.ParseSessionToken(token, s.cfg.Secret)
	if err != nil {
		return nil
	}

	return s.sessions.Delete(ctx, claims.ID)
}
