package handlers

import (
	"net/http"
	"strings"

	"photo-album-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// maxUploadMemory bounds the in-memory part of multipart parsing;
// larger files spill to temporary disk storage.
const maxUploadMemory = 32 << 20

// ImageHandler handles image-related HTTP requests
type ImageHandler struct {
	images   ImageStore
	uploader MediaUploader
}

// NewImageHandler creates a new image handler
func NewImageHandler(images ImageStore, uploader MediaUploader) *ImageHandler {
	return &ImageHandler{
		images:   images,
		uploader: uploader,
	}
}

// UploadImage handles POST /images. The file arrives in the "image"
// multipart field; the remaining metadata comes from form values.
// ImageURL and Size are taken from the upload result, never from the
// client.
func (h *ImageHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, "no file uploaded", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.uploader.Upload(ctx, file, header)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to upload image")
		respondStoreError(w, "Error while adding image", err)
		return
	}

	image := &models.Image{
		ImageID:    r.FormValue("imageId"),
		AlbumID:    r.FormValue("albumId"),
		ImageURL:   result.URL,
		Name:       r.FormValue("name"),
		Tags:       splitFormList(r.FormValue("tags")),
		Person:     r.FormValue("person"),
		IsFavorite: r.FormValue("isFavorite") == "true",
		Comments:   splitFormList(r.FormValue("comments")),
		Size:       result.Size,
	}

	image, err = h.images.Create(ctx, image)
	if err != nil {
		log.Error().Err(err).Str("album_id", image.AlbumID).Msg("Failed to create image record")
		respondStoreError(w, "Error while adding image", err)
		return
	}

	log.Info().
		Str("image_id", image.ID.Hex()).
		Str("album_id", image.AlbumID).
		Str("url", result.URL).
		Int64("size", result.Size).
		Msg("Image uploaded")

	respondEnvelope(w, http.StatusAccepted, "Image uploaded successfully", "newImage", image)
}

// ListImages handles GET /images
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.images.FindAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list images")
		respondStoreError(w, "Error fetching images", err)
		return
	}

	respondJSON(w, http.StatusOK, images)
}

// DeleteImage handles DELETE /images/{id}
func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := h.images.Delete(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("image_id", id).Msg("Failed to delete image")
		respondStoreError(w, "Error while deleting image", err)
		return
	}

	respondEnvelope(w, http.StatusOK, "Image deleted successfully", "images", image)
}

// splitFormList parses a comma-separated form value into a list.
func splitFormList(v string) []string {
	if v == "" {
		return []string{}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
