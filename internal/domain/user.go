package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is returned by user lookups when no document matches.
var ErrUserNotFound = errors.New("user not found")

// User is a registered account. At most one user exists per email; the
// password field holds the bcrypt hash, never the plain text.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}
