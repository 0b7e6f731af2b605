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

// productRow is the stored shape of a product. The bson tags are the single
// source of truth for the snake_case column names.
type productRow struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Hint        string             `bson:"hint"`
	Price       string             `bson:"price"`
	PriceValue  int                `bson:"price_value"`
	Sizes       []string           `bson:"sizes"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r productRow) model() models.Product {
	return models.Product{
		ID:          r.ID.Hex(),
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Hint:        r.Hint,
		Price:       r.Price,
		PriceValue:  r.PriceValue,
		Sizes:       r.Sizes,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.db.Collection(productsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, unavailable("list products", err)
	}
	defer cursor.Close(ctx)

	var rows []productRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, unavailable("decode products", err)
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.model())
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any record.
		return nil, store.ErrNotFound
	}

	var row productRow
	err = s.db.Collection(productsCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get product", err)
	}

	product := row.model()
	return &product, nil
}

func (s *Store) AddProduct(ctx context.Context, draft store.ProductDraft) (*models.Product, error) {
	row := productRow{
		ID:          primitive.NewObjectID(),
		Name:        draft.Name,
		Description: draft.Description,
		Image:       draft.Image,
		Hint:        draft.Hint,
		Price:       draft.Price,
		PriceValue:  draft.PriceValue,
		Sizes:       draft.Sizes,
		Category:    draft.Category,
		CreatedAt:   time.Now(),
	}

	if _, err := s.db.Collection(productsCollection).InsertOne(ctx, row); err != nil {
		return nil, unavailable("add product", err)
	}

	product := row.model()
	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch store.ProductPatch) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	updateSet := bson.M{}
	if patch.Name != nil {
		updateSet["name"] = *patch.Name
	}
	if patch.Description != nil {
		updateSet["description"] = *patch.Description
	}
	if patch.Image != nil {
		updateSet["image"] = *patch.Image
	}
	if patch.Hint != nil {
		updateSet["hint"] = *patch.Hint
	}
	if patch.Price != nil {
		updateSet["price"] = *patch.Price
	}
	if patch.PriceValue != nil {
		updateSet["price_value"] = *patch.PriceValue
	}
	if patch.Sizes != nil {
		updateSet["sizes"] = *patch.Sizes
	}
	if patch.Category != nil {
		updateSet["category"] = *patch.Category
	}

	if len(updateSet) > 0 {
		result, err := s.db.Collection(productsCollection).UpdateOne(
			ctx,
			bson.M{"_id": objectID},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			return nil, unavailable("update product", err)
		}
		if result.MatchedCount == 0 {
			return nil, store.ErrNotFound
		}
	}

	return s.GetProduct(ctx, id)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.db.Collection(productsCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, unavailable("delete product", err)
	}
	return result.DeletedCount > 0, nil
}
