package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BlogHandler serves public blog reads.
type BlogHandler struct {
	blog         *store.BlogStore
	exposeHidden bool
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(blog *store.BlogStore, exposeHidden bool) *BlogHandler {
	return &BlogHandler{blog: blog, exposeHidden: exposeHidden}
}

// List returns published posts, newest first. Supports optional ?category=
// and case-insensitive ?search= filters.
func (h *BlogHandler) List(c *gin.Context) {
	filter := store.BlogFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	rows, errList := h.blog.ListPublished(c.Request.Context(), filter)
	if errList != nil {
		log.WithError(errList).Error("list blog posts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve blog posts"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns a single post by numeric ID.
func (h *BlogHandler) Get(c *gin.Context) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog post ID"})
		return
	}

	post, errGet := h.blog.Get(c.Request.Context(), id)
	if errGet != nil {
		if errors.Is(errGet, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		log.WithError(errGet).Error("get blog post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve blog post"})
		return
	}
	if !h.exposeHidden && !post.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetBySlug returns a single post by its unique slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog post slug"})
		return
	}

	post, errGet := h.blog.GetBySlug(c.Request.Context(), slug)
	if errGet != nil {
		if errors.Is(errGet, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		log.WithError(errGet).Error("get blog post by slug failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve blog post"})
		return
	}
	if !h.exposeHidden && !post.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}
