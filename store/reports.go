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

// DefaultReportLimit is the page size for report listings.
const DefaultReportLimit = 50

// LiveReportCap bounds the live-disasters view.
const LiveReportCap = 50

// ReportStore persists disaster reports.
type ReportStore struct {
	col *mongo.Collection
}

// ReportFilter narrows report listings. Empty fields match everything.
type ReportFilter struct {
	Status string
	Type   string
	Page   int
	Limit  int
}

// Insert stores a new report and returns its generated id.
func (s *ReportStore) Insert(ctx context.Context, report *models.Report) (string, error) {
	report.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, report); err != nil {
		return "", err
	}
	return report.ID.Hex(), nil
}

// FindByID returns a single report or ErrNotFound.
func (s *ReportStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns reports matching the filter, newest first, with the total
// count for pagination.
func (s *ReportStore) List(ctx context.Context, f ReportFilter) ([]models.Report, int64, error) {
	query := bson.M{}
	if f.Status != "" && f.Status != "all" {
		query["status"] = f.Status
	}
	if f.Type != "" && f.Type != "all" {
		query["disasterType"] = f.Type
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip, limit := pageWindow(f.Page, f.Limit, DefaultReportLimit)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// UpdateStatus sets the report status and the verified flag it implies.
// ErrNotFound covers both an unknown id and an update that changed nothing.
func (s *ReportStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus, now time.Time) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":      status,
			"verified":    status.VerifiedFlag(),
			"lastUpdated": now,
		},
	})
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLive returns reports submitted at or after since that carry a
// non-empty location, newest first, capped at limit.
func (s *ReportStore) ListLive(ctx context.Context, since time.Time, limit int64) ([]models.Report, error) {
	query := bson.M{
		"timestamp": bson.M{"$gte": since},
		"location":  bson.M{"$exists": true, "$ne": ""},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// StatusCounts returns the totals backing the stats endpoint.
func (s *ReportStore) StatusCounts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}

	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	counts["total"] = total

	for _, status := range []models.ReportStatus{models.StatusPending, models.StatusVerified, models.StatusResolved} {
		n, err := s.col.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		counts[string(status)] = n
	}
	return counts, nil
}

// TypeCount is one bucket of the disaster type distribution.
type TypeCount struct {
	Type  string `bson:"_id" json:"type"`
	Count int64  `bson:"count" json:"count"`
}

// TypeDistribution groups reports by disaster type, most frequent first.
func (s *ReportStore) TypeDistribution(ctx context.Context) ([]TypeCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$disasterType", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dist := []TypeCount{}
	if err := cursor.All(ctx, &dist); err != nil {
		return nil, err
	}
	return dist, nil
}
