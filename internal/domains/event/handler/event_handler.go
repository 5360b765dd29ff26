package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"edubright-backend/internal/domains/event"
	"edubright-backend/internal/shared/response"
)

type EventHandler struct {
	service event.Service
}

func NewEventHandler(service event.Service) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
		return
	}

	status := event.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "something went wrong")
		return
	}
	response.ErrorResponse(c, status, "EVENT_ERROR", err.Error())
}

// ListEvents godoc
// GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", event.EventListResponse{
		Events: events,
		Total:  len(events),
	})
}

// GetEvent godoc
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	evt, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", evt)
}

// CreateEvent godoc
// POST /api/v1/admin/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	evt, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "event created", evt)
}

// UpdateEvent godoc
// PUT /api/v1/admin/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	var req event.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	evt, err := h.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event updated", evt)
}

// DeleteEvent godoc
// DELETE /api/v1/admin/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event deleted", nil)
}

// ListTags godoc
// GET /api/v1/events/tags
func (h *EventHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", tags)
}

// CreateTag godoc
// POST /api/v1/admin/events/tags
func (h *EventHandler) CreateTag(c *gin.Context) {
	var req event.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tag, err := h.service.CreateTag(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "tag created", tag)
}

// DeleteTag godoc
// DELETE /api/v1/admin/events/tags/:id
func (h *EventHandler) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	if err := h.service.DeleteTag(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tag deleted", nil)
}

// ListRegistrations godoc
// GET /api/v1/admin/events/:id/registrations
func (h *EventHandler) ListRegistrations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	regs, err := h.service.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", regs)
}

// Register godoc
// POST /api/v1/events/register
//
// Authenticated endpoint: identity comes from the JWT claims set by the
// auth middleware.
func (h *EventHandler) Register(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req event.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	email := c.GetString("email")
	name := req.Name
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	result, err := h.service.Register(c.Request.Context(), event.Attendee{
		UserID: userID.(uuid.UUID),
		Email:  email,
		Name:   name,
	}, req.EventID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "registration complete", result)
}
