package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Album is a named collection of images with one owner and a set of
// users it has been shared with.
type Album struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description" bson:"description"`
	OwnerID     string        `json:"ownerId" bson:"ownerId"`
	SharedUser  []string      `json:"sharedUser" bson:"sharedUser"`
}

// Image holds an uploaded photo's metadata plus its hosted URL.
// ImageURL and Size are populated from the upload result, never from
// the client.
type Image struct {
	ID         bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	ImageID    string        `json:"imageId" bson:"imageId"`
	AlbumID    string        `json:"albumId" bson:"albumId"`
	ImageURL   string        `json:"imageUrl" bson:"imageUrl"`
	Name       string        `json:"name" bson:"name"`
	Tags       []string      `json:"tags" bson:"tags"`
	Person     string        `json:"person" bson:"person"`
	IsFavorite bool          `json:"isFavorite" bson:"isFavorite"`
	Comments   []string      `json:"comments" bson:"comments"`
	Size       int64         `json:"size" bson:"size"`
}

// User is a local record of a Google account, created lazily on first
// profile fetch. UserID is the provider's profile id.
type User struct {
	ID     bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID string        `json:"userId" bson:"userId"`
	Name   string        `json:"name" bson:"name"`
	Email  string        `json:"email" bson:"email"`
}

// ShareRecord associates an album with a user it has been shared to,
// independent of the album's own SharedUser set.
type ShareRecord struct {
	ID         bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	AlbumID    bson.ObjectID `json:"album" bson:"album"`
	SharedUser string        `json:"sharedUser" bson:"sharedUser"`
}

// ShareRecordWithAlbum is a ShareRecord with the referenced album
// document inlined, as returned by the shareData listing.
type ShareRecordWithAlbum struct {
	ID         bson.ObjectID `json:"_id" bson:"_id"`
	Album      Album         `json:"album" bson:"album"`
	SharedUser string        `json:"sharedUser" bson:"sharedUser"`
}
