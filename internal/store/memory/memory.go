// Package memory implements the store interfaces with process-local
// collections. It backs tests and offline development; the Store owns its
// slices outright, so every test can run against its own isolated instance.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

// Store keeps all collections in memory behind one RWMutex. Lists are held
// newest first, which keeps ListProducts/ListOrders in createdAt-descending
// order without re-sorting.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	orders   []models.Order
	users    []models.User
	tokens   []models.RefreshToken
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

func cloneProduct(p models.Product) models.Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	return p
}

/* =======================
   PRODUCTS
======================= */

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := cloneProduct(p)
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) AddProduct(ctx context.Context, draft store.ProductDraft) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Image:       draft.Image,
		Hint:        draft.Hint,
		Price:       draft.Price,
		PriceValue:  draft.PriceValue,
		Sizes:       append([]string(nil), draft.Sizes...),
		Category:    draft.Category,
		CreatedAt:   time.Now(),
	}
	s.products = append([]models.Product{product}, s.products...)

	created := cloneProduct(product)
	return &created, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch store.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Hint != nil {
			p.Hint = *patch.Hint
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.PriceValue != nil {
			p.PriceValue = *patch.PriceValue
		}
		if patch.Sizes != nil {
			p.Sizes = append([]string(nil), (*patch.Sizes)...)
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		updated := cloneProduct(*p)
		return &updated, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

/* =======================
   ORDERS
======================= */

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	out = append(out, s.orders...)
	return out, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) AddOrder(ctx context.Context, draft store.OrderDraft) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	order := models.Order{
		ID:              id,
		OrderNumber:     store.OrderNumberFromID(id),
		UserID:          draft.UserID,
		UserEmail:       draft.UserEmail,
		ProductID:       draft.ProductID,
		ProductName:     draft.ProductName,
		Size:            draft.Size,
		Quantity:        draft.Quantity,
		TotalAmount:     draft.TotalAmount,
		PaymentMethod:   draft.PaymentMethod,
		DeliveryAddress: draft.DeliveryAddress,
		Status:          draft.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.orders = append([]models.Order{order}, s.orders...)

	created := order
	return &created, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			updated := s.orders[i]
			return &updated, nil
		}
	}
	return nil, store.ErrNotFound
}

/* =======================
   USERS
======================= */

func (s *Store) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, store.ErrConflict
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)

	created := user
	return &created, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) SaveRefreshToken(ctx context.Context, token models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = append(s.tokens, token)
	return nil
}

func (s *Store) GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tokens {
		if t.TokenHash == tokenHash {
			found := t
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tokens {
		if s.tokens[i].TokenHash == tokenHash {
			s.tokens[i].Revoked = true
			return nil
		}
	}
	return store.ErrNotFound
}
