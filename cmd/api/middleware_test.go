package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pizzeria/internal/auth"
	"pizzeria/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubTokens struct{ token string }

func (s *stubTokens) GenerateToken(userID int64, roles []string) (string, error) {
	return s.token, nil
}

type stubUsers struct {
	users map[int64]*store.User
}

func (s *stubUsers) GetByID(_ context.Context, userID int64) (*store.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*store.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

type stubSessions struct {
	markers map[string]int64
}

func (s *stubSessions) Create(_ context.Context, fragment string, userID int64) error {
	if fragment == "" {
		return errors.New("empty fragment")
	}
	s.markers[fragment] = userID
	return nil
}

func (s *stubSessions) Resolve(_ context.Context, fragment string) (int64, error) {
	userID, ok := s.markers[fragment]
	if fragment == "" || !ok {
		return 0, store.ErrNotFound
	}
	return userID, nil
}

func (s *stubSessions) Delete(_ context.Context, fragment string) error {
	delete(s.markers, fragment)
	return nil
}

func newTestApp(t *testing.T, users map[int64]*store.User, markers map[string]int64) *application {
	t.Helper()
	svc := auth.NewService(
		&stubTokens{token: "header.payload.signature"},
		&stubUsers{users: users},
		&stubSessions{markers: markers},
	)
	return &application{
		logger: zap.NewNop().Sugar(),
		auth:   svc,
	}
}

func okHandler(t *testing.T, called *bool) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthTokenMiddleware(t *testing.T) {
	diner := &store.User{
		ID:    1,
		Email: "d@jwt.com",
		Roles: []store.RoleBinding{{Role: store.RoleDiner}},
	}
	users := map[int64]*store.User{1: diner}

	tests := []struct {
		name       string
		authHeader string
		markers    map[string]int64
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "missing header",
			authHeader: "",
			markers:    map[string]int64{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			markers:    map[string]int64{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "active session",
			authHeader: "Bearer aaa.bbb.ccc",
			markers:    map[string]int64{"ccc": 1},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "revoked session",
			authHeader: "Bearer aaa.bbb.ccc",
			markers:    map[string]int64{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token never matches",
			authHeader: "Bearer garbage",
			markers:    map[string]int64{"ccc": 1},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, users, tt.markers)

			var called bool
			handler := app.AuthTokenMiddleware(okHandler(t, &called))

			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestAuthTokenMiddlewarePutsUserInContext(t *testing.T) {
	diner := &store.User{ID: 1, Email: "d@jwt.com", Roles: []store.RoleBinding{{Role: store.RoleDiner}}}
	app := newTestApp(t, map[int64]*store.User{1: diner}, map[string]int64{"ccc": 1})

	handler := app.AuthTokenMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := getUserFromContext(r)
		if user == nil || user.ID != 1 {
			t.Errorf("user in context = %+v, want id 1", user)
		}
		if token := getTokenFromContext(r); token != "aaa.bbb.ccc" {
			t.Errorf("token in context = %q", token)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer aaa.bbb.ccc")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func withUser(req *http.Request, user *store.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), userCtx, user))
}

func TestRequireAdmin(t *testing.T) {
	admin := &store.User{ID: 1, Roles: []store.RoleBinding{{Role: store.RoleAdmin}}}
	diner := &store.User{ID: 2, Roles: []store.RoleBinding{{Role: store.RoleDiner}}}

	tests := []struct {
		name       string
		user       *store.User
		wantStatus int
	}{
		{"admin admitted", admin, http.StatusOK},
		{"diner forbidden", diner, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil, nil)
			var called bool
			handler := app.RequireAdmin(okHandler(t, &called))

			req := withUser(httptest.NewRequest(http.MethodPut, "/v1/menu", nil), tt.user)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireFranchiseAccess(t *testing.T) {
	admin := &store.User{ID: 1, Roles: []store.RoleBinding{{Role: store.RoleAdmin}}}
	franchisee := &store.User{ID: 2, Roles: []store.RoleBinding{{Role: store.RoleFranchisee, ObjectID: 7}}}
	diner := &store.User{ID: 3, Roles: []store.RoleBinding{{Role: store.RoleDiner}}}

	tests := []struct {
		name        string
		user        *store.User
		franchiseID string
		wantStatus  int
	}{
		{"admin bypasses scope", admin, "99", http.StatusOK},
		{"franchisee on own franchise", franchisee, "7", http.StatusOK},
		{"franchisee on other franchise", franchisee, "8", http.StatusForbidden},
		{"diner forbidden", diner, "7", http.StatusForbidden},
		{"bad franchise id", admin, "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil, nil)
			var called bool
			handler := app.RequireFranchiseAccess(okHandler(t, &called))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("franchiseID", tt.franchiseID)

			req := withUser(httptest.NewRequest(http.MethodGet, "/v1/franchises/"+tt.franchiseID, nil), tt.user)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	diner := &store.User{ID: 1, Email: "d@jwt.com", Roles: []store.RoleBinding{{Role: store.RoleDiner}}}
	markers := map[string]int64{"ccc": 1}
	app := newTestApp(t, map[int64]*store.User{1: diner}, markers)

	handler := app.AuthTokenMiddleware(http.HandlerFunc(app.logoutHandler))

	req := httptest.NewRequest(http.MethodDelete, "/v1/auth", nil)
	req.Header.Set("Authorization", "Bearer aaa.bbb.ccc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if _, ok := markers["ccc"]; ok {
		t.Error("session marker should be gone after logout")
	}

	// the same token is now rejected
	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer aaa.bbb.ccc")
	rr = httptest.NewRecorder()
	app.AuthTokenMiddleware(http.HandlerFunc(app.getMeHandler)).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status after logout = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
