// Package media implements the media listing, upload, and delete endpoints.
package media

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mywebsite/privatemedia/internal/auth"
	"github.com/mywebsite/privatemedia/internal/middleware"
	"github.com/mywebsite/privatemedia/internal/post"
	"github.com/mywebsite/privatemedia/internal/response"
	"github.com/mywebsite/privatemedia/internal/storage"
)

const fallbackContentType = "application/octet-stream"

// PostIndex is the subset of the post repository the handlers need.
type PostIndex interface {
	Create(ctx context.Context, mediaKey, mediaType string, createdAt time.Time) (*post.Post, error)
	ListNewestFirst(ctx context.Context) ([]post.Post, error)
	GetByID(ctx context.Context, id int64) (*post.Post, error)
	Delete(ctx context.Context, id int64) error
}

// Handler holds HTTP handlers for media endpoints.
type Handler struct {
	index PostIndex
	store storage.Storage
}

// NewHandler creates a new media Handler.
func NewHandler(index PostIndex, store storage.Storage) *Handler {
	return &Handler{index: index, store: store}
}

// PostResponse is the client-safe view of a post. The storage key is never
// included; clients only ever see a short-lived signed URL.
type PostResponse struct {
	ID        int64     `json:"id"`
	MediaURL  string    `json:"mediaUrl"`
	MediaType string    `json:"mediaType"`
	Timestamp time.Time `json:"timestamp"`
}

// MediaPageResponse is the full payload for the media listing.
type MediaPageResponse struct {
	Posts    []PostResponse `json:"posts"`
	UserRole string         `json:"userRole"`
}

// List godoc
//
//	@Summary		List media
//	@Description	Returns all posts newest-first. Every call mints fresh 15-minute signed URLs, so expiry windows restart on each listing.
//	@Tags			media
//	@Produce		json
//	@Success		200	{object}	MediaPageResponse
//	@Failure		401	{object}	response.Envelope
//	@Failure		502	{object}	response.Envelope
//	@Router			/media [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	posts, err := h.index.ListNewestFirst(r.Context())
	if err != nil {
		log.Printf("media: list posts: %v", err)
		response.InternalError(w)
		return
	}

	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		mediaURL, err := h.store.PresignedURL(r.Context(), p.MediaKey)
		if err != nil {
			log.Printf("media: presign post %d: %v", p.ID, err)
			response.BadGateway(w, "object storage unavailable")
			return
		}
		out = append(out, PostResponse{
			ID:        p.ID,
			MediaURL:  mediaURL,
			MediaType: p.MediaType,
			Timestamp: p.CreatedAt,
		})
	}

	response.JSON(w, http.StatusOK, MediaPageResponse{Posts: out, UserRole: string(role)})
}

// Upload godoc
//
//	@Summary		Upload media
//	@Description	Stores the uploaded file privately in the object store, then records the post. The post row is only written after the object write succeeds.
//	@Tags			media
//	@Accept			multipart/form-data
//	@Param			file	formData	file	true	"Media file"
//	@Success		200
//	@Failure		400	{object}	response.Envelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		502	{object}	response.Envelope
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "multipart field 'file' required")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		response.BadRequest(w, "uploaded file is empty")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackContentType
	}

	key, err := h.store.Store(r.Context(), file, header.Size, contentType, header.Filename)
	if err != nil {
		log.Printf("media: store upload: %v", err)
		response.BadGateway(w, "object storage unavailable")
		return
	}

	if _, err := h.index.Create(r.Context(), key, contentType, time.Now().UTC()); err != nil {
		log.Printf("media: create post: %v", err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete godoc
//
//	@Summary		Delete media
//	@Description	Admin only. Removes the object from storage first; the index row is kept when the object-store delete fails, so no orphaned object is silently left behind.
//	@Tags			media
//	@Param			id	path	int	true	"Post ID"
//	@Success		200
//	@Failure		400	{object}	response.Envelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		403	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		502	{object}	response.Envelope
//	@Router			/media/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}
	if role != auth.RoleAdmin {
		response.Forbidden(w, "admin role required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid post id")
		return
	}

	p, err := h.index.GetByID(r.Context(), id)
	if errors.Is(err, post.ErrNotFound) {
		response.NotFound(w, "post not found")
		return
	}
	if err != nil {
		log.Printf("media: get post %d: %v", id, err)
		response.InternalError(w)
		return
	}

	result, err := h.store.Delete(r.Context(), p.MediaKey)
	if result == storage.DeleteFailed {
		// Keep the index row so the object is never orphaned silently.
		log.Printf("media: delete object %q: %v", p.MediaKey, err)
		response.BadGateway(w, "object storage unavailable")
		return
	}

	if err := h.index.Delete(r.Context(), id); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			response.NotFound(w, "post not found")
			return
		}
		log.Printf("media: delete post %d: %v", id, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusOK)
}
