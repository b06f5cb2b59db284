package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ShareHandler handles share-record HTTP requests
type ShareHandler struct {
	shares ShareStore
}

// NewShareHandler creates a new share handler
func NewShareHandler(shares ShareStore) *ShareHandler {
	return &ShareHandler{shares: shares}
}

// ListShareData handles GET /v1/shareData. Each record carries its
// referenced album inlined.
func (h *ShareHandler) ListShareData(w http.ResponseWriter, r *http.Request) {
	records, err := h.shares.FindAllWithAlbum(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list share records")
		respondStoreError(w, "Error while fetching share album", err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// DeleteShareData handles DELETE /v1/shareData/{id}, removing every
// share record for the given album.
func (h *ShareHandler) DeleteShareData(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	deleted, err := h.shares.DeleteByAlbum(r.Context(), albumID)
	if err != nil {
		log.Error().Err(err).Str("album_id", albumID).Msg("Failed to delete share records")
		respondStoreError(w, "Error while deleting share album", err)
		return
	}

	respondEnvelope(w, http.StatusOK, "Share data deleted", "data", map[string]int64{
		"deletedCount": deleted,
	})
}
