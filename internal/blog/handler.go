package blog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/service/internal/media"
	"github.com/devfolio/service/internal/response"
)

// Handler holds HTTP handlers for blog endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new blog Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CreateResponse is the success body of POST /blog.
type CreateResponse struct {
	ID string `json:"id"`
}

// List godoc
//
//	@Summary	List blog posts
//	@Tags		blog
//	@Produce	json
//	@Success	200	{array}		Post
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/blog [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		response.Internal(w, "Failed to fetch blog posts")
		return
	}
	response.JSON(w, http.StatusOK, posts)
}

// Get godoc
//
//	@Summary	Get a blog post
//	@Tags		blog
//	@Produce	json
//	@Param		id	path		string	true	"Post ID"
//	@Success	200	{object}	Post
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/blog/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "Post not found")
			return
		}
		response.Internal(w, "Failed to fetch post")
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Create godoc
//
//	@Summary	Create a blog post
//	@Tags		blog
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		post	body		Post	true	"Post"
//	@Success	200		{object}	CreateResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/blog [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p := &Post{}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.svc.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, err, "Failed to add blog post")
		return
	}
	response.JSON(w, http.StatusOK, CreateResponse{ID: id})
}

// Update godoc
//
//	@Summary	Update a blog post
//	@Tags		blog
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Post ID"
//	@Param		post	body		Post	true	"Post"
//	@Success	200		{object}	map[string]bool
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/blog/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	p := &Post{}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		h.writeError(w, err, "Failed to update blog post")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
//
//	@Summary	Delete a blog post
//	@Tags		blog
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Post ID"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/blog/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "Failed to delete blog post")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *media.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(w, verr.Error())
	case h.svc.IsNotFound(err):
		response.NotFound(w, "Post not found")
	default:
		response.Internal(w, fallback)
	}
}
