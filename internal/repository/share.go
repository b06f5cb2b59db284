package repository

import (
	"context"
	"fmt"

	"photo-album-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ShareRepository handles database operations for share records
type ShareRepository struct {
	coll *mongo.Collection
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *mongo.Database) *ShareRepository {
	return &ShareRepository{coll: db.Collection("sharedata")}
}

// FindAllWithAlbum retrieves every share record with the referenced
// album document inlined.
func (r *ShareRepository) FindAllWithAlbum(ctx context.Context) ([]models.ShareRecordWithAlbum, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "albums",
			"localField":   "album",
			"foreignField": "_id",
			"as":           "album",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$album",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list share records: %w", err)
	}

	records := []models.ShareRecordWithAlbum{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode share records: %w", err)
	}
	return records, nil
}

// DeleteByAlbum removes every share record referencing the given album
// and returns the number deleted.
func (r *ShareRepository) DeleteByAlbum(ctx context.Context, albumID string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(albumID)
	if err != nil {
		return 0, fmt.Errorf("invalid album id %q: %w", albumID, err)
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"album": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete share records: %w", err)
	}
	return res.DeletedCount, nil
}
