package repository

import (
	"context"
	"fmt"

	"photo-album-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// AlbumRepository handles database operations for albums
type AlbumRepository struct {
	coll *mongo.Collection
}

// NewAlbumRepository creates a new album repository
func NewAlbumRepository(db *mongo.Database) *AlbumRepository {
	return &AlbumRepository{coll: db.Collection("albums")}
}

// Create inserts a new album and returns it with its assigned id.
func (r *AlbumRepository) Create(ctx context.Context, album *models.Album) (*models.Album, error) {
	if album.SharedUser == nil {
		album.SharedUser = []string{}
	}

	res, err := r.coll.InsertOne(ctx, album)
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		album.ID = oid
	}
	return album, nil
}

// FindAll retrieves every album.
func (r *AlbumRepository) FindAll(ctx context.Context) ([]models.Album, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}

	albums := []models.Album{}
	if err := cur.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("failed to decode albums: %w", err)
	}
	return albums, nil
}

// AddSharedUser adds a user to the album's sharedUser set and returns
// the updated document. Adding the same user twice is a no-op.
func (r *AlbumRepository) AddSharedUser(ctx context.Context, id, sharedUser string) (*models.Album, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid album id %q: %w", id, err)
	}

	var album models.Album
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"sharedUser": sharedUser}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&album)
	if err != nil {
		return nil, fmt.Errorf("failed to share album: %w", err)
	}
	return &album, nil
}

// Update applies a partial update and returns the post-update document.
func (r *AlbumRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Album, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid album id %q: %w", id, err)
	}

	// _id is immutable; an update body carrying it would fail the write.
	delete(fields, "_id")

	var album models.Album
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&album)
	if err != nil {
		return nil, fmt.Errorf("failed to update album: %w", err)
	}
	return &album, nil
}

// Delete removes an album by id and returns the deleted document.
func (r *AlbumRepository) Delete(ctx context.Context, id string) (*models.Album, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid album id %q: %w", id, err)
	}

	var album models.Album
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&album); err != nil {
		return nil, fmt.Errorf("failed to delete album: %w", err)
	}
	return &album, nil
}
