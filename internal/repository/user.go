package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diazeddy/dataset-api/internal/domain"
)

const userCollection = "user"

// UserRepo persists users in the "user" collection, keyed by email.
type UserRepo struct {
	collection *mongo.Collection
}

// NewUserRepo builds the repository and ensures a unique index on email,
// so concurrent duplicate sign-ups fail at the store instead of producing
// two documents.
func NewUserRepo(ctx context.Context, db *mongo.Database) (*UserRepo, error) {
	collection := db.Collection(userCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("creating email index: %w", err)
	}

	return &UserRepo{collection: collection}, nil
}

// FindByEmail returns the user with the given email, or
// domain.ErrUserNotFound when no such user exists.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given email is registered.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Insert stores a new user document with the already-hashed password.
func (r *UserRepo) Insert(ctx context.Context, email, passwordHash string) error {
	_, err := r.collection.InsertOne(ctx, bson.M{
		"email":    email,
		"password": passwordHash,
	})
	return err
}
