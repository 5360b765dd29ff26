package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"edubright-backend/internal/domains/blog"
	"edubright-backend/internal/shared/response"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
		return
	}

	status := blog.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "something went wrong")
		return
	}
	response.ErrorResponse(c, status, "BLOG_ERROR", err.Error())
}

// ListPosts godoc
// GET /api/v1/blog/posts
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", blog.PostListResponse{
		Posts: posts,
		Total: len(posts),
	})
}

// GetPost godoc
// GET /api/v1/blog/posts/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", post)
}

// CreatePost godoc
// POST /api/v1/admin/blog/posts
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req blog.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "post created", post)
}

// UpdatePost godoc
// PUT /api/v1/admin/blog/posts/:id
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req blog.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post updated", post)
}

// DeletePost godoc
// DELETE /api/v1/admin/blog/posts/:id
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post deleted", nil)
}

// SetPostTags godoc
// PUT /api/v1/admin/blog/posts/:id/tags
func (h *BlogHandler) SetPostTags(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req blog.SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.SetPostTags(c.Request.Context(), id, req.TagIDs); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post tags updated", nil)
}

// ListAuthors godoc
// GET /api/v1/blog/authors
func (h *BlogHandler) ListAuthors(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", authors)
}

// CreateAuthor godoc
// POST /api/v1/admin/blog/authors
func (h *BlogHandler) CreateAuthor(c *gin.Context) {
	var req blog.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	author, err := h.service.CreateAuthor(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "author created", author)
}

// UpdateAuthor godoc
// PUT /api/v1/admin/blog/authors/:id
func (h *BlogHandler) UpdateAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var req blog.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	author, err := h.service.UpdateAuthor(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author updated", author)
}

// DeleteAuthor godoc
// DELETE /api/v1/admin/blog/authors/:id
func (h *BlogHandler) DeleteAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author deleted", nil)
}

// ListTags godoc
// GET /api/v1/blog/tags
func (h *BlogHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", tags)
}

// CreateTag godoc
// POST /api/v1/admin/blog/tags
func (h *BlogHandler) CreateTag(c *gin.Context) {
	var req blog.CreateTagRequest
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
// DELETE /api/v1/admin/blog/tags/:id
func (h *BlogHandler) DeleteTag(c *gin.Context) {
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
