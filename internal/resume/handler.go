package resume

import (
	"errors"
	"io"
	"net/http"

	"github.com/devfolio/service/internal/media"
	"github.com/devfolio/service/internal/response"
)

// Handler holds HTTP handlers for resume endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new resume Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// UploadResponse is the success body of POST /resume/upload and GET /resume/current.
type UploadResponse struct {
	Success bool  `json:"success"`
	Resume  *Info `json:"resume"`
}

// DownloadResponse is the success body of GET /resume/download.
type DownloadResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl"`
}

// Upload godoc
//
//	@Summary		Upload a new resume
//	@Description	Accepts a PDF up to 5 MiB and replaces the current resume. The previous file stays in the store but is no longer referenced.
//	@Tags			resume
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file	true	"Resume PDF"
//	@Success		200	{object}	UploadResponse
//	@Failure		400	{object}	response.ErrorResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/resume/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Internal(w, "failed to read uploaded file")
		return
	}

	info, err := h.svc.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		var verr *media.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, verr.Error())
			return
		}
		// The wrapped message distinguishes a failed object write from a
		// failed metadata save.
		response.Internal(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, UploadResponse{Success: true, Resume: info})
}

// Current godoc
//
//	@Summary	Get the current resume
//	@Tags		resume
//	@Produce	json
//	@Success	200	{object}	UploadResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/resume/current [get]
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	info := h.svc.Current(r.Context())
	if info == nil {
		response.NotFound(w, "No resume found")
		return
	}
	response.JSON(w, http.StatusOK, UploadResponse{Success: true, Resume: info})
}

// Download godoc
//
//	@Summary	Get a signed download URL for a resume
//	@Tags		resume
//	@Produce	json
//	@Param		key	query	string	true	"Resume storage key"
//	@Success	200	{object}	DownloadResponse
//	@Failure	400	{object}	response.ErrorResponse
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/resume/download [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		response.BadRequest(w, "Resume key is required")
		return
	}

	url, err := h.svc.DownloadURL(r.Context(), key)
	if err != nil {
		response.Internal(w, "Failed to generate download URL")
		return
	}

	response.JSON(w, http.StatusOK, DownloadResponse{Success: true, DownloadURL: url})
}
