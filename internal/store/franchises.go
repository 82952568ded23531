package store

import (
	"context"
	"errors"

	"pizzeria/internal/params"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateFranchise = errors.New("a franchise with that name already exists")

type Franchise struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Admins []Admin `json:"admins,omitempty"`
	Stores []Store `json:"stores"`
}

// Admin is the slim view of a franchisee user attached to a franchise.
type Admin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Store struct {
	ID          int64  `json:"id"`
	FranchiseID int64  `json:"franchise_id"`
	Name        string `json:"name"`
}

type FranchisesStore struct {
	db *pgxpool.Pool
}

// Create inserts the franchise and one franchisee role binding per admin in
// a single transaction. The franchisee users themselves are looked up by the
// caller before this runs; a user deleted between that lookup and this
// transaction surfaces as a foreign key failure, a known race window.
func (s *FranchisesStore) Create(ctx context.Context, franchise *Franchise, franchiseeIDs []int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			`INSERT INTO franchises (name, created_at) VALUES ($1, NOW()) RETURNING id`,
			franchise.Name,
		).Scan(&franchise.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateFranchise
			}
			return err
		}

		for _, userID := range franchiseeIDs {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO user_roles (user_id, role, object_id) VALUES ($1, $2, $3)`,
				userID, RoleFranchisee, franchise.ID,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *FranchisesStore) GetByID(ctx context.Context, franchiseID int64) (*Franchise, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	f := &Franchise{}
	err := s.db.QueryRow(
		ctx, `SELECT id, name FROM franchises WHERE id = $1`, franchiseID,
	).Scan(&f.ID, &f.Name)
	if err != nil {
		switch err {
		case pgx.ErrNoRows:
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	if f.Stores, err = s.storesFor(ctx, f.ID); err != nil {
		return nil, err
	}
	if f.Admins, err = s.adminsFor(ctx, f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FranchisesStore) List(ctx context.Context, p params.Pagination) ([]Franchise, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM franchises`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(
		ctx,
		`SELECT id, name FROM franchises ORDER BY id LIMIT $1 OFFSET $2`,
		p.Limit, p.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var franchises []Franchise
	for rows.Next() {
		var f Franchise
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, 0, err
		}
		franchises = append(franchises, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range franchises {
		if franchises[i].Stores, err = s.storesFor(ctx, franchises[i].ID); err != nil {
			return nil, 0, err
		}
	}
	return franchises, total, nil
}

func (s *FranchisesStore) storesFor(ctx context.Context, franchiseID int64) ([]Store, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, franchise_id, name FROM stores WHERE franchise_id = $1 ORDER BY id`,
		franchiseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []Store{}
	for rows.Next() {
		var st Store
		if err := rows.Scan(&st.ID, &st.FranchiseID, &st.Name); err != nil {
			return nil, err
		}
		stores = append(stores, st)
	}
	return stores, rows.Err()
}

func (s *FranchisesStore) adminsFor(ctx context.Context, franchiseID int64) ([]Admin, error) {
	query := `
		SELECT u.id, u.name, u.email
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		WHERE ur.role = $1 AND ur.object_id = $2
		ORDER BY u.id
	`
	rows, err := s.db.Query(ctx, query, RoleFranchisee, franchiseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []Admin
	for rows.Next() {
		var a Admin
		if err := rows.Scan(&a.ID, &a.Name, &a.Email); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// Delete removes the franchise, its stores and the franchisee role bindings
// scoped to it in one transaction.
func (s *FranchisesStore) Delete(ctx context.Context, franchiseID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM stores WHERE franchise_id = $1`, franchiseID); err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM user_roles WHERE role = $1 AND object_id = $2`,
			RoleFranchisee, franchiseID,
		); err != nil {
			return err
		}
		res, err := tx.Exec(ctx, `DELETE FROM franchises WHERE id = $1`, franchiseID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *FranchisesStore) CreateStore(ctx context.Context, st *Store) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(
		ctx,
		`INSERT INTO stores (franchise_id, name) VALUES ($1, $2) RETURNING id`,
		st.FranchiseID, st.Name,
	).Scan(&st.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *FranchisesStore) DeleteStore(ctx context.Context, franchiseID, storeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.Exec(
		ctx,
		`DELETE FROM stores WHERE id = $1 AND franchise_id = $2`,
		storeID, franchiseID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
