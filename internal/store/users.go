package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail = errors.New("a user with that email already exists")
	ErrNoRoles        = errors.New("a user needs at least one role")
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDiner      Role = "diner"
	RoleFranchisee Role = "franchisee"
)

// Valid reports whether r is one of the closed set of roles accepted at the
// store boundary.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDiner, RoleFranchisee:
		return true
	}
	return false
}

// RoleBinding associates a user with a role. ObjectID scopes franchisee
// bindings to a franchise; admin and diner bindings carry 0.
type RoleBinding struct {
	Role     Role  `json:"role"`
	ObjectID int64 `json:"object_id,omitempty"`
}

type User struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Password  password      `json:"-"` // Hide password
	Roles     []RoleBinding `json:"roles"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HasRole reports whether the user holds role. A scoped binding matches only
// its own objectID; an unscoped admin binding matches any requirement.
func (u *User) HasRole(role Role, objectID int64) bool {
	for _, b := range u.Roles {
		if b.Role == RoleAdmin && b.ObjectID == 0 {
			return true
		}
		if b.Role != role {
			continue
		}
		if objectID == 0 || b.ObjectID == objectID {
			return true
		}
	}
	return false
}

// Password struct to keep the hash out of JSON and logs.
type password struct {
	hash []byte `json:"-"`
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.hash = hash
	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

type UsersStore struct {
	db *pgxpool.Pool
}

// Create inserts the user row and one row per role binding in a single
// transaction. The plaintext never reaches the store; callers hash through
// Password.Set first.
func (s *UsersStore) Create(ctx context.Context, user *User) error {
	if len(user.Roles) == 0 {
		return ErrNoRoles
	}
	for _, b := range user.Roles {
		if !b.Role.Valid() {
			return fmt.Errorf("invalid role %q", b.Role)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		query := `
		  INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(
			ctx, query, user.Name, user.Email, user.Password.hash,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateEmail
			}
			return err
		}

		for _, b := range user.Roles {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO user_roles (user_id, role, object_id) VALUES ($1, $2, $3)`,
				user.ID, b.Role, b.ObjectID,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *UsersStore) GetByID(ctx context.Context, userID int64) (*User, error) {
	query := `
	   SELECT id, name, email, password, created_at, updated_at
	   FROM users
	   WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user := &User{}
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password.hash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		switch err {
		case pgx.ErrNoRows:
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	if user.Roles, err = s.getRoles(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail compares emails with the store's native string comparison, so
// lookups are case-sensitive as stored.
func (s *UsersStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, password, created_at, updated_at FROM users
		WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user := &User{}
	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password.hash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		switch err {
		case pgx.ErrNoRows:
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	if user.Roles, err = s.getRoles(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UsersStore) getRoles(ctx context.Context, userID int64) ([]RoleBinding, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT role, object_id FROM user_roles WHERE user_id = $1 ORDER BY role, object_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []RoleBinding
	for rows.Next() {
		var b RoleBinding
		if err := rows.Scan(&b.Role, &b.ObjectID); err != nil {
			return nil, err
		}
		roles = append(roles, b)
	}
	return roles, rows.Err()
}

// Update patches only the supplied fields. The password is re-hashed only
// when a new plaintext arrives.
func (s *UsersStore) Update(ctx context.Context, userID int64, name, email, plaintext *string) (*User, error) {
	setClauses := []string{}
	args := []any{}
	argCounter := 1

	if name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argCounter))
		args = append(args, *name)
		argCounter++
	}
	if email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argCounter))
		args = append(args, *email)
		argCounter++
	}
	if plaintext != nil {
		var p password
		if err := p.Set(*plaintext); err != nil {
			return nil, err
		}
		setClauses = append(setClauses, fmt.Sprintf("password = $%d", argCounter))
		args = append(args, p.hash)
		argCounter++
	}

	if len(setClauses) > 0 {
		args = append(args, userID)
		query := fmt.Sprintf("UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
			strings.Join(setClauses, ", "), argCounter)

		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		res, err := s.db.Exec(ctx, query, args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, ErrDuplicateEmail
			}
			return nil, err
		}
		if res.RowsAffected() == 0 {
			return nil, ErrNotFound
		}
	}

	return s.GetByID(ctx, userID)
}

// Delete removes the user, its role bindings and any active sessions in one
// transaction.
func (s *UsersStore) Delete(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
			return err
		}
		res, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
