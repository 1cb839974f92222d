package store

import (
	"context"
	"time"

	"disaster-alert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultUserLimit is the page size for user listings.
const DefaultUserLimit = 20

// UserStore persists registered accounts.
type UserStore struct {
	col *mongo.Collection
}

// Insert stores a new user. A duplicate email surfaces as
// ErrDuplicateEmail via the unique index, which is the authoritative
// uniqueness check.
func (s *UserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return user.ID.Hex(), nil
}

// FindByEmail returns the user with the given (lower-cased) email or
// ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id or ErrNotFound.
func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps a successful authentication.
func (s *UserStore) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"lastLogin": now},
	})
	return err
}

// Verify marks the account verified. The flag is one-directional; there is
// no un-verify operation.
func (s *UserStore) Verify(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"verified": true, "verifiedAt": now},
	})
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns users newest first with the password field excluded.
func (s *UserStore) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip, lim := pageWindow(page, limit, DefaultUserLimit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(lim).
		SetProjection(bson.M{"password": 0})

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Counts returns total and verified user counts.
func (s *UserStore) Counts(ctx context.Context) (total, verified int64, err error) {
	if total, err = s.col.CountDocuments(ctx, bson.M{}); err != nil {
		return 0, 0, err
	}
	if verified, err = s.col.CountDocuments(ctx, bson.M{"verified": true}); err != nil {
		return 0, 0, err
	}
	return total, verified, nil
}
