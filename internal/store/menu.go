package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PriceCents  int64  `json:"price_cents"`
}

type MenuStore struct {
	db *pgxpool.Pool
}

func (s *MenuStore) List(ctx context.Context) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(
		ctx,
		`SELECT id, title, description, image, price_cents FROM menu_items ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MenuItem{}
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Image, &item.PriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Upsert inserts the item, or updates it in place when ID is set.
func (s *MenuStore) Upsert(ctx context.Context, item *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if item.ID == 0 {
		return s.db.QueryRow(
			ctx,
			`INSERT INTO menu_items (title, description, image, price_cents) VALUES ($1, $2, $3, $4) RETURNING id`,
			item.Title, item.Description, item.Image, item.PriceCents,
		).Scan(&item.ID)
	}

	res, err := s.db.Exec(
		ctx,
		`UPDATE menu_items SET title = $1, description = $2, image = $3, price_cents = $4 WHERE id = $5`,
		item.Title, item.Description, item.Image, item.PriceCents, item.ID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuStore) GetByIDs(ctx context.Context, ids []int64) ([]MenuItem, error) {
	if len(ids) == 0 {
		return []MenuItem{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(
		ctx,
		`SELECT id, title, description, image, price_cents FROM menu_items WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MenuItem{}
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Image, &item.PriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *MenuStore) SetImage(ctx context.Context, itemID int64, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.Exec(ctx, `UPDATE menu_items SET image = $1 WHERE id = $2`, imageURL, itemID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
