package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
)

type BlogReader interface {
	List(ctx context.Context, p search.Paging) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

type BlogHandler struct {
	Posts  BlogReader
	Logger *log.Logger
}

func NewBlogHandler(posts BlogReader, logger *log.Logger) *BlogHandler {
	return &BlogHandler{Posts: posts, Logger: logger}
}

// ListPosts is GET /api/blog
func (h *BlogHandler) ListPosts(c *gin.Context) {
	paging, err := search.ParsePaging(c.Request.URL.Query(), search.DefaultLimit)
	if err != nil {
		respondError(c, h.Logger, "ListPosts", err, "")
		return
	}
	posts, err := h.Posts.List(c.Request.Context(), paging)
	if err != nil {
		respondError(c, h.Logger, "ListPosts", err, "")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost is GET /api/blog/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.Posts.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.Logger, "GetPost", err, "Blog post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}
