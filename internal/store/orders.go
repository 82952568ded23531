package store

import (
	"context"
	"time"

	"pizzeria/internal/params"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	FranchiseID int64       `json:"franchise_id"`
	StoreID     int64       `json:"store_id"`
	OrderNumber string      `json:"order_number"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	MenuItemID  int64  `json:"menu_item_id"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

type OrdersStore struct {
	db *pgxpool.Pool
}

// Create inserts the order row and its items in one transaction. The public
// order number is derived from the assigned id by numberFor and written
// before commit, so no order is ever visible without one.
func (s *OrdersStore) Create(ctx context.Context, order *Order, numberFor func(orderID int64) (string, error)) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		query := `
		  INSERT INTO orders (user_id, franchise_id, store_id, order_number, created_at)
		  VALUES ($1, $2, $3, '', NOW()) RETURNING id, created_at
		`
		err := tx.QueryRow(
			ctx, query, order.UserID, order.FranchiseID, order.StoreID,
		).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		if order.OrderNumber, err = numberFor(order.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx, `UPDATE orders SET order_number = $1 WHERE id = $2`, order.OrderNumber, order.ID,
		); err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			err := tx.QueryRow(
				ctx,
				`INSERT INTO order_items (order_id, menu_item_id, description, price_cents) VALUES ($1, $2, $3, $4) RETURNING id`,
				item.OrderID, item.MenuItemID, item.Description, item.PriceCents,
			).Scan(&item.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *OrdersStore) ListByUser(ctx context.Context, userID int64, p params.Pagination) ([]Order, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var total int
	if err := s.db.QueryRow(
		ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(
		ctx,
		`SELECT id, user_id, franchise_id, store_id, order_number, created_at
		 FROM orders WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		userID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.FranchiseID, &o.StoreID, &o.OrderNumber, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		if orders[i].Items, err = s.itemsFor(ctx, orders[i].ID); err != nil {
			return nil, 0, err
		}
	}
	return orders, total, nil
}

func (s *OrdersStore) itemsFor(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, order_id, menu_item_id, description, price_cents FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Description, &item.PriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
