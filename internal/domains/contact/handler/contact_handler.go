package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"edubright-backend/internal/domains/contact"
	"edubright-backend/internal/shared/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit godoc
// POST /api/v1/contact
//
// Public endpoint. Field errors come back as a field -> message map so
// the form can mark each invalid input.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	submission, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
			return
		}
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusCreated, "thanks for reaching out", submission)
}

// ListSubmissions godoc
// GET /api/v1/admin/contact
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.service.ListSubmissions(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusOK, "", subs)
}
