package store

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/params"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, *User) error
		GetByID(context.Context, int64) (*User, error)
		GetByEmail(context.Context, string) (*User, error)
		Update(ctx context.Context, userID int64, name, email, plaintext *string) (*User, error)
		Delete(context.Context, int64) error
	}
	Sessions interface {
		Create(ctx context.Context, fragment string, userID int64) error
		Resolve(ctx context.Context, fragment string) (int64, error)
		Delete(ctx context.Context, fragment string) error
	}
	Franchises interface {
		Create(ctx context.Context, franchise *Franchise, franchiseeIDs []int64) error
		GetByID(ctx context.Context, franchiseID int64) (*Franchise, error)
		List(ctx context.Context, p params.Pagination) ([]Franchise, int, error)
		Delete(ctx context.Context, franchiseID int64) error
		CreateStore(ctx context.Context, s *Store) error
		DeleteStore(ctx context.Context, franchiseID, storeID int64) error
	}
	Menu interface {
		List(context.Context) ([]MenuItem, error)
		Upsert(context.Context, *MenuItem) error
		GetByIDs(context.Context, []int64) ([]MenuItem, error)
		SetImage(ctx context.Context, itemID int64, imageURL string) error
	}
	Orders interface {
		Create(ctx context.Context, order *Order, numberFor func(orderID int64) (string, error)) error
		ListByUser(ctx context.Context, userID int64, p params.Pagination) ([]Order, int, error)
	}
	PushTokens interface {
		AddOrUpdate(ctx context.Context, userID int64, token string, deviceInfo []byte) error
		Remove(ctx context.Context, userID int64, token string) error
		GetTokensByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]string, error)
		PruneStale(ctx context.Context, olderThan time.Duration) error
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Users:      &UsersStore{db},
		Sessions:   &SessionsStore{db},
		Franchises: &FranchisesStore{db},
		Menu:       &MenuStore{db},
		Orders:     &OrdersStore{db},
		PushTokens: &PushTokensStore{db},
	}
}
