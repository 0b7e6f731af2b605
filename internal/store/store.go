// Package store defines the repository contracts shared by the in-memory
// and MongoDB backends. Handlers depend only on these interfaces; the
// concrete backend is chosen once at startup.
package store

import (
	"context"
	"errors"
	"strings"

	"campuswear/internal/models"
)

// ErrNotFound signals that no record matches the requested id. It is a
// normal outcome, not a failure: callers branch on it with errors.Is and
// must not log it as an error.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable wraps any backend failure (network, auth, constraint).
// Mutations surface it to the caller; list reads degrade to an empty
// collection instead.
var ErrUnavailable = errors.New("store unavailable")

// ErrConflict signals a unique-key violation, e.g. registering an email
// that already has an account.
var ErrConflict = errors.New("record already exists")

// ProductDraft carries every product field the caller supplies on create.
// The store assigns ID and CreatedAt.
type ProductDraft struct {
	Name        string
	Description string
	Image       string
	Hint        string
	Price       string
	PriceValue  int
	Sizes       []string
	Category    string
}

// ProductPatch is a partial update: only non-nil fields are applied.
type ProductPatch struct {
	Name        *string
	Description *string
	Image       *string
	Hint        *string
	Price       *string
	PriceValue  *int
	Sizes       *[]string
	Category    *string
}

// OrderDraft carries every order field the caller supplies on create. The
// store assigns ID, OrderNumber and both timestamps; it does not force
// Status, which callers are expected to set to Pending.
type OrderDraft struct {
	UserID          string
	UserEmail       string
	ProductID       string
	ProductName     string
	Size            string
	Quantity        int
	TotalAmount     int
	PaymentMethod   string
	DeliveryAddress string
	Status          string
}

// ProductStore is the catalogue repository. List returns products newest
// first (createdAt descending) in both backends.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	AddProduct(ctx context.Context, draft ProductDraft) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

// OrderStore is the order repository. DeleteProduct has no counterpart
// here on purpose: orders are immutable history apart from their status.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	AddOrder(ctx context.Context, draft OrderDraft) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)
}

// UserStore holds customer accounts and their refresh tokens.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveRefreshToken(ctx context.Context, token models.RefreshToken) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}

// OrderNumberFromID derives the human-facing order number from a record id:
// "ORD-" plus the last six hex digits of the id, uppercased. Because ids are
// collision-resistant, so are the numbers; nothing is derived from clocks or
// collection sizes.
func OrderNumberFromID(id string) string {
	const width = 6
	hex := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' {
			hex = append(hex, c)
		}
	}
	if len(hex) > width {
		hex = hex[len(hex)-width:]
	}
	suffix := strings.ToUpper(string(hex))
	for len(suffix) < width {
		suffix = "0" + suffix
	}
	return "ORD-" + suffix
}
