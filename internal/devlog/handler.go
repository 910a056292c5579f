package devlog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/service/internal/media"
	"github.com/devfolio/service/internal/response"
)

// Handler holds HTTP handlers for development log endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new devlog Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CreateResponse is the success body of POST /portfolio/{id}/logs.
type CreateResponse struct {
	ID string `json:"id"`
}

// ListByProject godoc
//
//	@Summary	List development logs for a project
//	@Tags		logs
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{array}		Entry
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/portfolio/{id}/logs [get]
func (h *Handler) ListByProject(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListByProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Internal(w, "Failed to fetch development logs")
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

// Create godoc
//
//	@Summary	Create a development log entry
//	@Tags		logs
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Project ID"
//	@Param		entry	body		Entry	true	"Log entry"
//	@Success	200		{object}	CreateResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/portfolio/{id}/logs [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	e := &Entry{}
	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.svc.Create(r.Context(), chi.URLParam(r, "id"), e)
	if err != nil {
		h.writeError(w, err, "Failed to add development log")
		return
	}
	response.JSON(w, http.StatusOK, CreateResponse{ID: id})
}

// Get godoc
//
//	@Summary	Get a development log entry
//	@Tags		logs
//	@Produce	json
//	@Param		id	path		string	true	"Entry ID"
//	@Success	200	{object}	Entry
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/logs/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "Log entry not found")
			return
		}
		response.Internal(w, "Failed to fetch log entry")
		return
	}
	response.JSON(w, http.StatusOK, e)
}

// Update godoc
//
//	@Summary	Update a development log entry
//	@Tags		logs
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Entry ID"
//	@Param		entry	body		Entry	true	"Log entry"
//	@Success	200		{object}	map[string]bool
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/logs/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	e := &Entry{}
	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), e); err != nil {
		h.writeError(w, err, "Failed to update development log")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
//
//	@Summary	Delete a development log entry
//	@Tags		logs
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Entry ID"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/logs/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "Failed to delete development log")
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
		response.NotFound(w, "Log entry not found")
	default:
		response.Internal(w, fallback)
	}
}
