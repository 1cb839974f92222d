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

// DefaultContactLimit is the page size for contact listings.
const DefaultContactLimit = 20

// ContactStore persists contact messages.
type ContactStore struct {
	col *mongo.Collection
}

// Insert stores a new contact message and returns its generated id.
func (s *ContactStore) Insert(ctx context.Context, contact *models.Contact) (string, error) {
	contact.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, contact); err != nil {
		return "", err
	}
	return contact.ID.Hex(), nil
}

// MarkEmailResult records the dispatch outcome on the stored message. The
// update is best effort: a failure here must not invalidate the message.
func (s *ContactStore) MarkEmailResult(ctx context.Context, id primitive.ObjectID, sent bool, at time.Time) error {
	update := bson.M{"emailSent": sent}
	if sent {
		update["emailSentAt"] = at
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// List returns contact messages newest first, optionally filtered by
// status, with the total count for pagination.
func (s *ContactStore) List(ctx context.Context, status string, page, limit int) ([]models.Contact, int64, error) {
	query := bson.M{}
	if status != "" && status != "all" {
		query["status"] = status
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip, lim := pageWindow(page, limit, DefaultContactLimit)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(skip).
		SetLimit(lim)

	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// Counts returns total and unhandled ("new") contact counts.
func (s *ContactStore) Counts(ctx context.Context) (total, fresh int64, err error) {
	if total, err = s.col.CountDocuments(ctx, bson.M{}); err != nil {
		return 0, 0, err
	}
	if fresh, err = s.col.CountDocuments(ctx, bson.M{"status": models.ContactNew}); err != nil {
		return 0, 0, err
	}
	return total, fresh, nil
}
