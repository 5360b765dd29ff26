package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"edubright-backend/internal/domains/media"
	"edubright-backend/internal/shared/response"
)

type MediaHandler struct {
	service media.Service
}

func NewMediaHandler(service media.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

// Upload godoc
// POST /api/v1/admin/media
//
// Multipart form: "file" is the image, optional "folder" selects the
// object prefix (defaults to "uploads").
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if fileHeader.Size > media.MaxUploadBytes {
		response.ErrorResponse(c, http.StatusBadRequest, "MEDIA_ERROR", media.ErrTooLarge.Error())
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "could not read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, media.MaxUploadBytes+1))
	if err != nil {
		response.InternalServerError(c, "could not read upload")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.service.Upload(c.Request.Context(), folder, fileHeader.Filename, contentType, data)
	if err != nil {
		status := media.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.InternalServerError(c, "something went wrong")
			return
		}
		response.ErrorResponse(c, status, "MEDIA_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "upload complete", result)
}

// Delete godoc
// DELETE /api/v1/admin/media?key=...
func (h *MediaHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		response.BadRequest(c, "key is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), key); err != nil {
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusOK, "object deleted", nil)
}
