package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"edubright-backend/internal/domains/team"
	"edubright-backend/internal/shared/response"
)

type TeamHandler struct {
	service team.Service
}

func NewTeamHandler(service team.Service) *TeamHandler {
	return &TeamHandler{service: service}
}

// respondError maps domain errors to the response envelope. Validation
// errors from ozzo carry a field -> message map in details.
func (h *TeamHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
		return
	}

	status := team.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "something went wrong")
		return
	}
	response.ErrorResponse(c, status, "TEAM_ERROR", err.Error())
}

// ListMembers godoc
// GET /api/v1/team/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", team.MemberListResponse{
		Members: members,
		Total:   len(members),
	})
}

// GetMember godoc
// GET /api/v1/team/members/:id
func (h *TeamHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	member, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", member)
}

// CreateMember godoc
// POST /api/v1/admin/team/members
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req team.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	member, err := h.service.CreateMember(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "team member created", member)
}

// UpdateMember godoc
// PUT /api/v1/admin/team/members/:id
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	var req team.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "team member updated", member)
}

// DeleteMember godoc
// DELETE /api/v1/admin/team/members/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "team member deleted", nil)
}

// ReorderMembers godoc
// POST /api/v1/admin/team/members/reorder
//
// Returns the full renumbered list. On a failed persist the body still
// carries the authoritative list so the admin UI can roll back.
func (h *TeamHandler) ReorderMembers(c *gin.Context) {
	var req team.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	members, err := h.service.ReorderMembers(c.Request.Context(), req.FromIndex, req.ToIndex)
	if err != nil {
		if members != nil {
			response.ErrorWithDetails(c, team.ToHTTPStatus(err), "REORDER_FAILED", err.Error(),
				team.MemberListResponse{Members: members, Total: len(members)})
			return
		}
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "team members reordered", team.MemberListResponse{
		Members: members,
		Total:   len(members),
	})
}

// SetMemberTags godoc
// PUT /api/v1/admin/team/members/:id/tags
func (h *TeamHandler) SetMemberTags(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	var req team.SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.SetMemberTags(c.Request.Context(), id, req.TagIDs); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "member tags updated", nil)
}

// ListTags godoc
// GET /api/v1/team/tags
func (h *TeamHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", tags)
}

// CreateTag godoc
// POST /api/v1/admin/team/tags
func (h *TeamHandler) CreateTag(c *gin.Context) {
	var req team.CreateTagRequest
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

// UpdateTag godoc
// PUT /api/v1/admin/team/tags/:id
func (h *TeamHandler) UpdateTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	var req team.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tag, err := h.service.UpdateTag(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tag updated", tag)
}

// DeleteTag godoc
// DELETE /api/v1/admin/team/tags/:id
func (h *TeamHandler) DeleteTag(c *gin.Context) {
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

// ReorderTags godoc
// POST /api/v1/admin/team/tags/reorder
func (h *TeamHandler) ReorderTags(c *gin.Context) {
	var req team.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tags, err := h.service.ReorderTags(c.Request.Context(), req.FromIndex, req.ToIndex)
	if err != nil {
		if tags != nil {
			response.ErrorWithDetails(c, team.ToHTTPStatus(err), "REORDER_FAILED", err.Error(), tags)
			return
		}
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tags reordered", tags)
}
