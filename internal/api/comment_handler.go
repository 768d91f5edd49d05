package api

import (
	"net/http"
	"strconv"

	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment query and mutation endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{services: services, log: log}
}

// ListComments handles GET /v1/comments?article_id=&page=&page_size=&search=
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID := c.Query("article_id")
	page := intQuery(c, "page", 0)
	pageSize := intQuery(c, "page_size", 0)
	search := c.Query("search")

	result, err := h.services.Comment.ListComments(c.Request.Context(), articleID, page, pageSize, search)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateComment handles POST /v1/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	comment, err := h.services.Comment.CreateComment(c.Request.Context(), currentUser(c), req.ArticleID, req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// UpdateComment handles PUT /v1/comments/:document_id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	comment, err := h.services.Comment.UpdateComment(c.Request.Context(), currentUser(c), c.Param("document_id"), req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /v1/comments/:document_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	err := h.services.Comment.DeleteComment(c.Request.Context(), currentUser(c), c.Param("document_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// intQuery parses an integer query parameter, returning fallback on
// absence or garbage.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
