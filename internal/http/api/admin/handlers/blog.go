package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BlogAdminHandler manages blog-post writes.
type BlogAdminHandler struct {
	blog *store.BlogStore
}

// NewBlogAdminHandler constructs a BlogAdminHandler.
func NewBlogAdminHandler(blog *store.BlogStore) *BlogAdminHandler {
	return &BlogAdminHandler{blog: blog}
}

// createBlogPostRequest captures the payload for creating a post.
type createBlogPostRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Tags          []string   `json:"tags"`
	Category      string     `json:"category"`
	IsPublished   *bool      `json:"isPublished"` // Optional; defaults to published.
	PublishedAt   *time.Time `json:"publishedAt"` // Optional; defaults to now.
}

// updateBlogPostRequest captures optional fields for partial updates.
type updateBlogPostRequest struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Content       *string    `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Tags          *[]string  `json:"tags"`
	Category      *string    `json:"category"`
	IsPublished   *bool      `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// Create validates and inserts a blog post.
func (h *BlogAdminHandler) Create(c *gin.Context) {
	var body createBlogPostRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"title":    body.Title,
		"slug":     body.Slug,
		"content":  body.Content,
		"excerpt":  body.Excerpt,
		"category": body.Category,
	} {
		if blank(value) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, validationError(missing...))
		return
	}

	post := models.BlogPost{
		Title:         body.Title,
		Slug:          body.Slug,
		Content:       body.Content,
		Excerpt:       body.Excerpt,
		FeaturedImage: body.FeaturedImage,
		Tags:          datatypes.NewJSONSlice(body.Tags),
		Category:      body.Category,
		IsPublished:   body.IsPublished == nil || *body.IsPublished,
		PublishedAt:   body.PublishedAt,
	}
	if errCreate := h.blog.Create(c.Request.Context(), &post); errCreate != nil {
		log.WithError(errCreate).Error("create blog post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong. Please try again later."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog post created successfully",
		"post":    gin.H{"id": post.ID, "title": post.Title, "slug": post.Slug},
	})
}

// Update applies a partial payload; unspecified fields keep prior values.
func (h *BlogAdminHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog post ID"})
		return
	}

	var body updateBlogPostRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	changes := map[string]any{}
	if body.Title != nil {
		changes["title"] = *body.Title
	}
	if body.Slug != nil {
		changes["slug"] = *body.Slug
	}
	if body.Content != nil {
		changes["content"] = *body.Content
	}
	if body.Excerpt != nil {
		changes["excerpt"] = *body.Excerpt
	}
	if body.FeaturedImage != nil {
		changes["featured_image"] = *body.FeaturedImage
	}
	if body.Tags != nil {
		changes["tags"] = datatypes.NewJSONSlice(*body.Tags)
	}
	if body.Category != nil {
		changes["category"] = *body.Category
	}
	if body.IsPublished != nil {
		changes["is_published"] = *body.IsPublished
	}
	if body.PublishedAt != nil {
		changes["published_at"] = *body.PublishedAt
	}

	post, errUpdate := h.blog.Update(c.Request.Context(), id, changes)
	if errUpdate != nil {
		if errors.Is(errUpdate, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		log.WithError(errUpdate).Error("update blog post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong. Please try again later."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Blog post updated successfully",
		"post":    gin.H{"id": post.ID, "title": post.Title, "slug": post.Slug},
	})
}

// Delete removes a post; deleting a missing ID is still a success.
func (h *BlogAdminHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog post ID"})
		return
	}
	if errDelete := h.blog.Delete(c.Request.Context(), id); errDelete != nil {
		log.WithError(errDelete).Error("delete blog post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete blog post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
