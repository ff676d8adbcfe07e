package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/userauth-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const usersCollection = "users"

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	FirstName string             `bson:"first_name,omitempty"`
	LastName  string             `bson:"last_name,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d userDocument) toModel() model.User {
	return model.User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Role:      d.Role,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// UserRepository persists users in the users collection.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a user repository over the given connection.
func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		collection: db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the unique index on email. Uniqueness under
// concurrent registration relies entirely on this index; the application
// never pre-checks and trusts the result.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniqueEmail"),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	return nil
}

// Create inserts the user and returns it with the assigned id. A duplicate
// key on the email index is translated to model.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now()
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return doc.toModel(), nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return doc.toModel(), nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.User{}, model.ErrNotFound
	}

	var doc userDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return doc.toModel(), nil
}

// Delete removes the user with the given id. Used to roll back a
// registration whose credentials write failed.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
