package auth

import (
	"context"
	"errors"

	"pizzeria/internal/store"
)

// ErrUnauthorized is returned for missing, malformed or revoked tokens. A
// token that was never issued is indistinguishable from one that was
// revoked; callers get no oracle either way.
var ErrUnauthorized = errors.New("unauthorized")

// UserGetter is the slice of the credential store the service needs.
type UserGetter interface {
	GetByID(ctx context.Context, userID int64) (*store.User, error)
	GetByEmail(ctx context.Context, email string) (*store.User, error)
}

// SessionStore persists session markers keyed by token fragment.
type SessionStore interface {
	Create(ctx context.Context, fragment string, userID int64) error
	Resolve(ctx context.Context, fragment string) (int64, error)
	Delete(ctx context.Context, fragment string) error
}

// Service ties token minting to the session-marker store. Issue and Revoke
// drive the session lifecycle; IsActive and Resolve gate protected requests.
type Service struct {
	tokens   Authenticator
	users    UserGetter
	sessions SessionStore
}

func NewService(tokens Authenticator, users UserGetter, sessions SessionStore) *Service {
	return &Service{tokens: tokens, users: users, sessions: sessions}
}

// Issue mints a token for the user and persists its session marker. The
// token is returned only after the marker is written, so a caller never
// holds a token without a backing session.
func (s *Service) Issue(ctx context.Context, user *store.User) (string, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, b := range user.Roles {
		roles = append(roles, string(b.Role))
	}

	token, err := s.tokens.GenerateToken(user.ID, roles)
	if err != nil {
		return "", err
	}

	fragment := ExtractFragment(token)
	if err := s.sessions.Create(ctx, fragment, user.ID); err != nil {
		return "", err
	}

	return token, nil
}

// Revoke deletes the session marker for the token, if any. Revoking twice,
// or revoking a token that never existed, is a no-op.
func (s *Service) Revoke(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, ExtractFragment(token))
}

// IsActive reports whether the token denotes a live session. Malformed
// tokens extract to the empty fragment and are never active.
func (s *Service) IsActive(ctx context.Context, token string) (bool, error) {
	_, err := s.sessions.Resolve(ctx, ExtractFragment(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Resolve maps an active token to its owning user, role bindings included.
// Inactive or malformed tokens yield ErrUnauthorized.
func (s *Service) Resolve(ctx context.Context, token string) (*store.User, error) {
	userID, err := s.sessions.Resolve(ctx, ExtractFragment(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// session marker outlived the user row
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email + password. An unknown email and a wrong
// password fail with the same store.ErrNotFound so callers cannot probe
// which accounts exist.
func (s *Service) Authenticate(ctx context.Context, email, plaintext string) (*store.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	if err := user.Password.Compare(plaintext); err != nil {
		return nil, store.ErrNotFound
	}
	return user, nil
}

// Authorize reports whether the user may perform an operation requiring
// role. A non-zero objectID additionally pins the binding's scope; an
// unscoped admin binding bypasses scoping entirely.
func Authorize(user *store.User, role store.Role, objectID int64) bool {
	if user == nil {
		return false
	}
	return user.HasRole(role, objectID)
}
