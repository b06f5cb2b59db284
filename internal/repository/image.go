package repository

import (
	"context"
	"fmt"

	"photo-album-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ImageRepository handles database operations for images
type ImageRepository struct {
	coll *mongo.Collection
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{coll: db.Collection("images")}
}

// Create inserts a new image record and returns it with its assigned id.
func (r *ImageRepository) Create(ctx context.Context, image *models.Image) (*models.Image, error) {
	if image.Tags == nil {
		image.Tags = []string{}
	}
	if image.Comments == nil {
		image.Comments = []string{}
	}

	res, err := r.coll.InsertOne(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		image.ID = oid
	}
	return image, nil
}

// FindAll retrieves every image.
func (r *ImageRepository) FindAll(ctx context.Context) ([]models.Image, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images := []models.Image{}
	if err := cur.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	return images, nil
}

// Delete removes an image by id and returns the deleted document.
func (r *ImageRepository) Delete(ctx context.Context, id string) (*models.Image, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid image id %q: %w", id, err)
	}

	var image models.Image
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&image); err != nil {
		return nil, fmt.Errorf("failed to delete image: %w", err)
	}
	return &image, nil
}

// DeleteByAlbum removes every image belonging to the given album and
// returns the number deleted. Images of other albums are untouched.
func (r *ImageRepository) DeleteByAlbum(ctx context.Context, albumID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"albumId": albumID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete album images: %w", err)
	}
	return res.DeletedCount, nil
}
