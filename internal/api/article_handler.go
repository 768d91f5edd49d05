package api

import (
	"net/http"

	"github.com/content-comments-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article read endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{services: services, log: log}
}

// ListArticles handles GET /v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	page := intQuery(c, "page", 0)
	pageSize := intQuery(c, "page_size", 0)

	result, err := h.services.Content.ListArticles(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetArticle handles GET /v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Content.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
