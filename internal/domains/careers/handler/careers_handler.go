package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"edubright-backend/internal/domains/careers"
	"edubright-backend/internal/shared/response"
)

type CareersHandler struct {
	service careers.Service
}

func NewCareersHandler(service careers.Service) *CareersHandler {
	return &CareersHandler{service: service}
}

func (h *CareersHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
		return
	}

	status := careers.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "something went wrong")
		return
	}
	response.ErrorResponse(c, status, "CAREERS_ERROR", err.Error())
}

// ListPublicJobs godoc
// GET /api/v1/careers (active postings only)
func (h *CareersHandler) ListPublicJobs(c *gin.Context) {
	jobs, err := h.service.ListPublicJobs(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", jobs)
}

// ListAllJobs godoc
// GET /api/v1/admin/careers (every posting, drafts included)
func (h *CareersHandler) ListAllJobs(c *gin.Context) {
	jobs, err := h.service.ListAllJobs(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", jobs)
}

// GetJob godoc
// GET /api/v1/careers/:id
func (h *CareersHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", job)
}

// CreateJob godoc
// POST /api/v1/admin/careers
func (h *CareersHandler) CreateJob(c *gin.Context) {
	var req careers.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "job posting created", job)
}

// UpdateJob godoc
// PUT /api/v1/admin/careers/:id
func (h *CareersHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	var req careers.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job posting updated", job)
}

// DeleteJob godoc
// DELETE /api/v1/admin/careers/:id
func (h *CareersHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job posting deleted", nil)
}
