package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/service/internal/media"
	"github.com/devfolio/service/internal/response"
)

// Handler holds HTTP handlers for portfolio endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new portfolio Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CreateResponse is the success body of POST /portfolio.
type CreateResponse struct {
	ID string `json:"id"`
}

// List godoc
//
//	@Summary	List portfolio projects
//	@Tags		portfolio
//	@Produce	json
//	@Success	200	{array}		Project
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/portfolio [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		response.Internal(w, "Failed to fetch portfolio")
		return
	}
	response.JSON(w, http.StatusOK, projects)
}

// Get godoc
//
//	@Summary	Get a portfolio project
//	@Tags		portfolio
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	Project
//	@Failure	404	{object}	response.ErrorResponse
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/portfolio/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "Project not found")
			return
		}
		response.Internal(w, "Failed to fetch project")
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Create godoc
//
//	@Summary	Create a portfolio project
//	@Tags		portfolio
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		project	body		Project	true	"Project"
//	@Success	200		{object}	CreateResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	500		{object}	response.ErrorResponse
//	@Router		/portfolio [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p := &Project{}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.svc.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, err, "Failed to add project")
		return
	}
	response.JSON(w, http.StatusOK, CreateResponse{ID: id})
}

// Update godoc
//
//	@Summary	Update a portfolio project
//	@Tags		portfolio
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Project ID"
//	@Param		project	body		Project	true	"Project"
//	@Success	200		{object}	map[string]bool
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/portfolio/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	p := &Project{}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		h.writeError(w, err, "Failed to update project")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
//
//	@Summary	Delete a portfolio project
//	@Tags		portfolio
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/portfolio/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "Failed to delete project")
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
		response.NotFound(w, "Project not found")
	default:
		response.Internal(w, fallback)
	}
}
