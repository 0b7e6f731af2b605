// Package mongodb implements the store interfaces against a hosted MongoDB
// database. Each entity has a row struct whose bson tags spell out the
// snake_case column mapping in one place; handlers only ever see the
// application-side models.
package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"campuswear/internal/store"
)

const (
	productsCollection = "products"
	ordersCollection   = "orders"
	usersCollection    = "users"
	tokensCollection   = "refresh_tokens"
)

// Store wraps the database handle shared by all repositories.
type Store struct {
	db *mongo.Database
}

// New creates a MongoDB-backed store.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// unavailable tags a backend failure so callers can match it with
// errors.Is(err, store.ErrUnavailable) while keeping the driver message.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, store.ErrUnavailable, err)
}
