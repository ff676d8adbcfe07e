package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/userauth-server/internal/model"
)

var _ model.CredentialsStore = (*CredentialsRepository)(nil)

const credentialsCollection = "user_credentials"

type credentialsDocument struct {
	UserID       string    `bson:"user_id"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

// CredentialsRepository persists password hashes, one document per user.
type CredentialsRepository struct {
	collection *mongo.Collection
}

// NewCredentialsRepository creates a credentials repository over the given
// connection.
func NewCredentialsRepository(db *Connection) *CredentialsRepository {
	return &CredentialsRepository{
		collection: db.Collection(credentialsCollection),
	}
}

// EnsureIndexes creates the unique index on the owning user id, keeping the
// one-to-one relation with users.
func (r *CredentialsRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniqueUserID"),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique user id index: %w", err)
	}

	return nil
}

// Create inserts the credentials record for a user.
func (r *CredentialsRepository) Create(ctx context.Context, credentials model.UserCredentials) error {
	doc := credentialsDocument{
		UserID:       credentials.UserID,
		PasswordHash: credentials.PasswordHash,
		CreatedAt:    credentials.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create credentials: %w", err)
	}

	return nil
}

// GetByUserID returns the credentials record owned by the given user.
func (r *CredentialsRepository) GetByUserID(ctx context.Context, userID string) (model.UserCredentials, error) {
	var doc credentialsDocument
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.UserCredentials{}, model.ErrNotFound
		}
		return model.UserCredentials{}, fmt.Errorf("failed to get credentials by user id: %w", err)
	}

	return model.UserCredentials{
		UserID:       doc.UserID,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
