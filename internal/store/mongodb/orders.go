package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

// orderRow is the stored shape of an order.
type orderRow struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	OrderNumber     string             `bson:"order_number"`
	UserID          string             `bson:"user_id"`
	UserEmail       string             `bson:"user_email"`
	ProductID       string             `bson:"product_id"`
	ProductName     string             `bson:"product_name"`
	Size            string             `bson:"size"`
	Quantity        int                `bson:"quantity"`
	TotalAmount     int                `bson:"total_amount"`
	PaymentMethod   string             `bson:"payment_method"`
	DeliveryAddress string             `bson:"delivery_address"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (r orderRow) model() models.Order {
	return models.Order{
		ID:              r.ID.Hex(),
		OrderNumber:     r.OrderNumber,
		UserID:          r.UserID,
		UserEmail:       r.UserEmail,
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		Size:            r.Size,
		Quantity:        r.Quantity,
		TotalAmount:     r.TotalAmount,
		PaymentMethod:   r.PaymentMethod,
		DeliveryAddress: r.DeliveryAddress,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (s *Store) listOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.db.Collection(ordersCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, unavailable("list orders", err)
	}
	defer cursor.Close(ctx)

	var rows []orderRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, unavailable("decode orders", err)
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.model())
	}
	return orders, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.listOrders(ctx, bson.M{})
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.listOrders(ctx, bson.M{"user_id": userID})
}

func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var row orderRow
	err = s.db.Collection(ordersCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get order", err)
	}

	order := row.model()
	return &order, nil
}

func (s *Store) AddOrder(ctx context.Context, draft store.OrderDraft) (*models.Order, error) {
	id := primitive.NewObjectID()
	now := time.Now()
	row := orderRow{
		ID:              id,
		OrderNumber:     store.OrderNumberFromID(id.Hex()),
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

	if _, err := s.db.Collection(ordersCollection).InsertOne(ctx, row); err != nil {
		return nil, unavailable("add order", err)
	}

	order := row.model()
	return &order, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	result, err := s.db.Collection(ordersCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return nil, unavailable("update order status", err)
	}
	if result.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}

	return s.GetOrder(ctx, id)
}
