package media

import (
	"errors"
	"io"
	"net/http"

	"github.com/devfolio/service/internal/response"
)

// Handler holds HTTP handlers for upload and media proxy endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new media Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// UploadResponse is the success body of POST /upload.
type UploadResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	URL     string `json:"url"`
	Type    Type   `json:"type"`
}

// Upload godoc
//
//	@Summary		Upload a media file
//	@Description	Accepts an image or video, validates it, and stores it in the object store under a generated key.
//	@Tags			media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file		formData	file	true	"Image or video file"
//	@Param			entityType	formData	string	false	"Owning entity: post, log or project (default post)"
//	@Success		200	{object}	UploadResponse
//	@Failure		400	{object}	response.ErrorResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	entityType, err := ParseEntityType(r.FormValue("entityType"))
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.Internal(w, "failed to read uploaded file")
		return
	}

	result, err := h.svc.Upload(r.Context(), entityType, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, verr.Error())
			return
		}
		response.Internal(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Key:     result.Key,
		URL:     result.URL,
		Type:    result.Type,
	})
}

// Media godoc
//
//	@Summary		Serve a private media object
//	@Description	Mints a one-hour signed URL for the stored key and redirects the client to it. The server never streams the bytes itself.
//	@Tags			media
//	@Param			key	query	string	true	"Storage key, must start with uploads/"
//	@Success		302
//	@Failure		400	{object}	response.ErrorResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/media [get]
func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	url, err := h.svc.SignedURL(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingKey):
			response.BadRequest(w, "Missing required parameter: key")
		case errors.Is(err, ErrInvalidKey):
			response.BadRequest(w, "Invalid key format")
		default:
			response.Internal(w, "Failed to generate media URL")
		}
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}
