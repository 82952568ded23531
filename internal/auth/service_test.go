package auth

import (
	"context"
	"errors"
	"testing"

	"pizzeria/internal/store"
)

type mockAuthenticator struct {
	generateFn func(userID int64, roles []string) (string, error)
}

func (m *mockAuthenticator) GenerateToken(userID int64, roles []string) (string, error) {
	return m.generateFn(userID, roles)
}

type mockUserGetter struct {
	getByIDFn    func(ctx context.Context, userID int64) (*store.User, error)
	getByEmailFn func(ctx context.Context, email string) (*store.User, error)
}

func (m *mockUserGetter) GetByID(ctx context.Context, userID int64) (*store.User, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockUserGetter) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	return m.getByEmailFn(ctx, email)
}

// memSessions behaves like the sessions table: markers live until deleted.
type memSessions struct {
	markers map[string]int64
}

func newMemSessions() *memSessions {
	return &memSessions{markers: make(map[string]int64)}
}

func (m *memSessions) Create(_ context.Context, fragment string, userID int64) error {
	if fragment == "" {
		return errors.New("empty fragment")
	}
	m.markers[fragment] = userID
	return nil
}

func (m *memSessions) Resolve(_ context.Context, fragment string) (int64, error) {
	if fragment == "" {
		return 0, store.ErrNotFound
	}
	userID, ok := m.markers[fragment]
	if !ok {
		return 0, store.ErrNotFound
	}
	return userID, nil
}

func (m *memSessions) Delete(_ context.Context, fragment string) error {
	delete(m.markers, fragment)
	return nil
}

var (
	_ Authenticator = (*mockAuthenticator)(nil)
	_ UserGetter    = (*mockUserGetter)(nil)
	_ SessionStore  = (*memSessions)(nil)
)

func testUser() *store.User {
	return &store.User{
		ID:    42,
		Name:  "pizza diner",
		Email: "d@jwt.com",
		Roles: []store.RoleBinding{{Role: store.RoleDiner}},
	}
}

func newTestService(sessions SessionStore, users UserGetter) *Service {
	tokens := &mockAuthenticator{
		generateFn: func(userID int64, roles []string) (string, error) {
			return "header.payload.signature", nil
		},
	}
	return NewService(tokens, users, sessions)
}

func TestServiceSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	sessions := newMemSessions()
	users := &mockUserGetter{
		getByIDFn: func(_ context.Context, userID int64) (*store.User, error) {
			if userID != user.ID {
				return nil, store.ErrNotFound
			}
			return user, nil
		},
	}
	svc := newTestService(sessions, users)

	token, err := svc.Issue(ctx, user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned an empty token")
	}

	active, err := svc.IsActive(ctx, token)
	if err != nil {
		t.Fatalf("IsActive after issue: %v", err)
	}
	if !active {
		t.Error("freshly issued token should be active")
	}

	resolved, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("Resolve returned user %d, want %d", resolved.ID, user.ID)
	}

	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	active, err = svc.IsActive(ctx, token)
	if err != nil {
		t.Fatalf("IsActive after revoke: %v", err)
	}
	if active {
		t.Error("revoked token should not be active")
	}

	if _, err := svc.Resolve(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Resolve after revoke: got %v, want ErrUnauthorized", err)
	}

	// revoking again is a no-op
	if err := svc.Revoke(ctx, token); err != nil {
		t.Errorf("second Revoke: %v", err)
	}
}

func TestServiceIssueWritesMarkerBeforeReturning(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	sessions := newMemSessions()
	svc := newTestService(sessions, &mockUserGetter{})

	token, err := svc.Issue(ctx, user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	fragment := ExtractFragment(token)
	if _, ok := sessions.markers[fragment]; !ok {
		t.Errorf("no session marker stored for fragment %q", fragment)
	}
}

func TestServiceMalformedTokensNeverActive(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	svc := newTestService(sessions, &mockUserGetter{})

	for _, token := range []string{"", "garbage", "only.two", "a.b.c.d", "..", "aaa.bbb."} {
		active, err := svc.IsActive(ctx, token)
		if err != nil {
			t.Fatalf("IsActive(%q): %v", token, err)
		}
		if active {
			t.Errorf("malformed token %q reported active", token)
		}
		if _, err := svc.Resolve(ctx, token); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Resolve(%q): got %v, want ErrUnauthorized", token, err)
		}
	}
}

func TestServiceResolveUnknownFragment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemSessions(), &mockUserGetter{})

	if _, err := svc.Resolve(ctx, "never.issued.token"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestServiceResolveDeletedUser(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	sessions := newMemSessions()
	users := &mockUserGetter{
		getByIDFn: func(_ context.Context, _ int64) (*store.User, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := newTestService(sessions, users)

	token, err := svc.Issue(ctx, user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Resolve(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized for an orphaned marker", err)
	}
}

func TestServiceIssueSessionWriteFails(t *testing.T) {
	ctx := context.Background()
	tokens := &mockAuthenticator{
		// a malformed token extracts to the empty fragment, which the
		// session store refuses
		generateFn: func(int64, []string) (string, error) {
			return "not-a-token", nil
		},
	}
	svc := NewService(tokens, &mockUserGetter{}, newMemSessions())

	if _, err := svc.Issue(ctx, testUser()); err == nil {
		t.Error("expected an error when the session marker cannot be written")
	}
}

func TestServiceAuthenticate(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	if err := user.Password.Set("diner"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	users := &mockUserGetter{
		getByEmailFn: func(_ context.Context, email string) (*store.User, error) {
			if email != user.Email {
				return nil, store.ErrNotFound
			}
			return user, nil
		},
	}
	svc := newTestService(newMemSessions(), users)

	got, err := svc.Authenticate(ctx, "d@jwt.com", "diner")
	if err != nil {
		t.Fatalf("Authenticate with good credentials: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got user %d, want %d", got.ID, user.ID)
	}

	// unknown email and wrong password fail identically
	_, errUnknown := svc.Authenticate(ctx, "nobody@jwt.com", "diner")
	_, errWrongPass := svc.Authenticate(ctx, "d@jwt.com", "wrong")

	if !errors.Is(errUnknown, store.ErrNotFound) {
		t.Errorf("unknown email: got %v, want store.ErrNotFound", errUnknown)
	}
	if !errors.Is(errWrongPass, store.ErrNotFound) {
		t.Errorf("wrong password: got %v, want store.ErrNotFound", errWrongPass)
	}
	if errUnknown != errWrongPass {
		t.Error("unknown email and wrong password must be indistinguishable")
	}
}

func TestAuthorize(t *testing.T) {
	admin := &store.User{Roles: []store.RoleBinding{{Role: store.RoleAdmin}}}
	diner := &store.User{Roles: []store.RoleBinding{{Role: store.RoleDiner}}}
	franchisee := &store.User{Roles: []store.RoleBinding{
		{Role: store.RoleDiner},
		{Role: store.RoleFranchisee, ObjectID: 7},
	}}

	tests := []struct {
		name     string
		user     *store.User
		role     store.Role
		objectID int64
		want     bool
	}{
		{"nil user", nil, store.RoleDiner, 0, false},
		{"admin bypasses any requirement", admin, store.RoleFranchisee, 99, true},
		{"admin role check", admin, store.RoleAdmin, 0, true},
		{"diner lacks admin", diner, store.RoleAdmin, 0, false},
		{"diner has diner", diner, store.RoleDiner, 0, true},
		{"franchisee matches own franchise", franchisee, store.RoleFranchisee, 7, true},
		{"franchisee blocked from other franchise", franchisee, store.RoleFranchisee, 8, false},
		{"unscoped franchisee check matches scoped binding", franchisee, store.RoleFranchisee, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.user, tt.role, tt.objectID); got != tt.want {
				t.Errorf("Authorize(%s, %d) = %v, want %v", tt.role, tt.objectID, got, tt.want)
			}
		})
	}
}
