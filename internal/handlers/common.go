package handlers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"

	"photo-album-backend/internal/models"
	"photo-album-backend/internal/services"
)

// AlbumStore is the album collection surface handlers depend on.
type AlbumStore interface {
	Create(ctx context.Context, album *models.Album) (*models.Album, error)
	FindAll(ctx context.Context) ([]models.Album, error)
	AddSharedUser(ctx context.Context, id, sharedUser string) (*models.Album, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Album, error)
	Delete(ctx context.Context, id string) (*models.Album, error)
}

// ImageStore is the image collection surface handlers depend on.
type ImageStore interface {
	Create(ctx context.Context, image *models.Image) (*models.Image, error)
	FindAll(ctx context.Context) ([]models.Image, error)
	Delete(ctx context.Context, id string) (*models.Image, error)
	DeleteByAlbum(ctx context.Context, albumID string) (int64, error)
}

// UserStore is the user collection surface handlers depend on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUserID(ctx context.Context, userID string) (*models.User, error)
	FindByEmailNot(ctx context.Context, email string) ([]models.User, error)
}

// ShareStore is the share-record collection surface handlers depend on.
type ShareStore interface {
	FindAllWithAlbum(ctx context.Context) ([]models.ShareRecordWithAlbum, error)
	DeleteByAlbum(ctx context.Context, albumID string) (int64, error)
}

// MediaUploader forwards a received file to object storage.
type MediaUploader interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*services.UploadResult, error)
}

// AuthProvider is the OAuth surface handlers depend on.
type AuthProvider interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*services.Profile, error)
}

// ErrorResponse represents a bare error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondError sends a bare {error} response.
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondEnvelope sends the {message, <field>} success envelope.
func respondEnvelope(w http.ResponseWriter, statusCode int, message, field string, data any) {
	respondJSON(w, statusCode, map[string]any{
		"message": message,
		field:     data,
	})
}

// respondStoreError sends the {message, error} failure envelope. The
// error text is echoed to the client, matching the API's contract.
func respondStoreError(w http.ResponseWriter, message string, err error) {
	respondJSON(w, http.StatusInternalServerError, map[string]any{
		"message": message,
		"error":   err.Error(),
	})
}
