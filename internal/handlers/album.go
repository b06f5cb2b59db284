package handlers

import (
	"encoding/json"
	"net/http"

	"photo-album-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AlbumHandler handles album-related HTTP requests
type AlbumHandler struct {
	albums AlbumStore
	images ImageStore
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(albums AlbumStore, images ImageStore) *AlbumHandler {
	return &AlbumHandler{
		albums: albums,
		images: images,
	}
}

// CreateAlbumRequest represents the request body for creating an album
type CreateAlbumRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OwnerID     string   `json:"ownerId"`
	SharedUser  []string `json:"sharedUser"`
}

// CreateAlbum handles POST /albums
func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Description == "" || req.OwnerID == "" {
		respondError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	album, err := h.albums.Create(ctx, &models.Album{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		log.Error().Err(err).Str("owner_id", req.OwnerID).Msg("Failed to create album")
		respondStoreError(w, "Album post error", err)
		return
	}

	respondEnvelope(w, http.StatusAccepted, "Album added successfully", "newAlbum", album)
}

// ListAlbums handles GET /albums
func (h *AlbumHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.albums.FindAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list albums")
		respondStoreError(w, "Error fetching albums", err)
		return
	}

	respondJSON(w, http.StatusOK, albums)
}

// ShareAlbumRequest represents the request body for sharing an album
type ShareAlbumRequest struct {
	SharedUser string `json:"sharedUser"`
}

// ShareAlbum handles POST /albums/{id}/share
func (h *AlbumHandler) ShareAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	var req ShareAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondStoreError(w, "Error while updating album", err)
		return
	}

	album, err := h.albums.AddSharedUser(ctx, albumID, req.SharedUser)
	if err != nil {
		log.Error().Err(err).Str("album_id", albumID).Msg("Failed to share album")
		respondStoreError(w, "Error while updating album", err)
		return
	}

	respondEnvelope(w, http.StatusAccepted, "Share album successfully", "albums", album)
}

// UpdateAlbum handles POST /albums/{id}
func (h *AlbumHandler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondStoreError(w, "Error while updating album", err)
		return
	}

	album, err := h.albums.Update(ctx, albumID, fields)
	if err != nil {
		log.Error().Err(err).Str("album_id", albumID).Msg("Failed to update album")
		respondStoreError(w, "Error while updating album", err)
		return
	}

	respondEnvelope(w, http.StatusAccepted, "Updated successfully", "albums", album)
}

// DeleteAlbum handles DELETE /albums/{id}. The album's images are
// deleted first; the two steps are not atomic.
func (h *AlbumHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	deleted, err := h.images.DeleteByAlbum(ctx, albumID)
	if err != nil {
		log.Error().Err(err).Str("album_id", albumID).Msg("Failed to delete album images")
		respondStoreError(w, "Error while deleting album", err)
		return
	}

	album, err := h.albums.Delete(ctx, albumID)
	if err != nil {
		log.Error().Err(err).Str("album_id", albumID).Msg("Failed to delete album")
		respondStoreError(w, "Error while deleting album", err)
		return
	}

	log.Info().
		Str("album_id", albumID).
		Int64("images_deleted", deleted).
		Msg("Album deleted")

	respondEnvelope(w, http.StatusAccepted, "Deleted successfully", "album", album)
}
