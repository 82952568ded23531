package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPasswordSetAndCompare(t *testing.T) {
	var p password
	if err := p.Set("correct horse"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := p.Compare("correct horse"); err != nil {
		t.Errorf("Compare with the right password: %v", err)
	}
	if err := p.Compare("battery staple"); err == nil {
		t.Error("Compare accepted the wrong password")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	var a, b password
	if err := a.Set("same input"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set("same input"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if string(a.hash) == string(b.hash) {
		t.Error("two hashes of the same input should differ")
	}
}

func TestUserJSONHidesPassword(t *testing.T) {
	user := User{ID: 1, Name: "a", Email: "a@test.com"}
	if err := user.Password.Set("secret"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(out)), "password") {
		t.Errorf("marshaled user leaks the password field: %s", out)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleDiner, RoleFranchisee} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "superadmin", "Admin"} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}

func TestUserHasRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []RoleBinding
		role     Role
		objectID int64
		want     bool
	}{
		{"no bindings", nil, RoleDiner, 0, false},
		{"exact diner", []RoleBinding{{Role: RoleDiner}}, RoleDiner, 0, true},
		{"diner is not admin", []RoleBinding{{Role: RoleDiner}}, RoleAdmin, 0, false},
		{"unscoped admin matches anything", []RoleBinding{{Role: RoleAdmin}}, RoleFranchisee, 42, true},
		{"scoped franchisee matches own scope", []RoleBinding{{Role: RoleFranchisee, ObjectID: 3}}, RoleFranchisee, 3, true},
		{"scoped franchisee rejects other scope", []RoleBinding{{Role: RoleFranchisee, ObjectID: 3}}, RoleFranchisee, 4, false},
		{"zero objectID matches any binding of the role", []RoleBinding{{Role: RoleFranchisee, ObjectID: 3}}, RoleFranchisee, 0, true},
		{"scoped admin does not bypass", []RoleBinding{{Role: RoleAdmin, ObjectID: 5}}, RoleDiner, 0, false},
		{"scoped admin still matches own scope", []RoleBinding{{Role: RoleAdmin, ObjectID: 5}}, RoleAdmin, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Roles: tt.roles}
			if got := u.HasRole(tt.role, tt.objectID); got != tt.want {
				t.Errorf("HasRole(%s, %d) = %v, want %v", tt.role, tt.objectID, got, tt.want)
			}
		})
	}
}

func TestStorageInterfaces(t *testing.T) {
	// the concrete stores must keep satisfying the Storage interfaces
	s := NewStorage(nil)
	if s.Users == nil || s.Sessions == nil || s.Franchises == nil ||
		s.Menu == nil || s.Orders == nil || s.PushTokens == nil {
		t.Fatal("NewStorage left a repository nil")
	}
}
