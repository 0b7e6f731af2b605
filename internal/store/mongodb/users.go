package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

type userRow struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Username     string             `bson:"username,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r userRow) model() models.User {
	return models.User{
		ID:           r.ID.Hex(),
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

type refreshTokenRow struct {
	TokenHash string    `bson:"token_hash"`
	UserID    string    `bson:"user_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	Revoked   bool      `bson:"revoked"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r refreshTokenRow) model() models.RefreshToken {
	return models.RefreshToken{
		TokenHash: r.TokenHash,
		UserID:    r.UserID,
		ExpiresAt: r.ExpiresAt,
		Revoked:   r.Revoked,
		CreatedAt: r.CreatedAt,
	}
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	row := userRow{
		ID:           primitive.NewObjectID(),
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}

	if _, err := s.db.Collection(usersCollection).InsertOne(ctx, row); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrConflict
		}
		return nil, unavailable("create user", err)
	}

	created := row.model()
	return &created, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var row userRow
	err = s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get user", err)
	}

	user := row.model()
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var row userRow
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get user by email", err)
	}

	user := row.model()
	return &user, nil
}

func (s *Store) SaveRefreshToken(ctx context.Context, token models.RefreshToken) error {
	row := refreshTokenRow{
		TokenHash: token.TokenHash,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
		Revoked:   token.Revoked,
		CreatedAt: token.CreatedAt,
	}
	if _, err := s.db.Collection(tokensCollection).InsertOne(ctx, row); err != nil {
		return unavailable("save refresh token", err)
	}
	return nil
}

func (s *Store) GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var row refreshTokenRow
	err := s.db.Collection(tokensCollection).FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get refresh token", err)
	}

	token := row.model()
	return &token, nil
}

func (s *Store) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	result, err := s.db.Collection(tokensCollection).UpdateOne(
		ctx,
		bson.M{"token_hash": tokenHash},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil {
		return unavailable("revoke refresh token", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
