package handlers

import (
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectAdminHandler manages admin CRUD for projects.
type ProjectAdminHandler struct {
	projects *store.ProjectStore
}

// NewProjectAdminHandler constructs a ProjectAdminHandler.
func NewProjectAdminHandler(projects *store.ProjectStore) *ProjectAdminHandler {
	return &ProjectAdminHandler{projects: projects}
}

// createProjectRequest captures the payload for creating a project.
type createProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	PrimaryTags []string `json:"primaryTags"`
	DemoURL     string   `json:"demoUrl"`
	GithubURL   string   `json:"githubUrl"`
	IsActive    *bool    `json:"isActive"`  // Optional; defaults to active.
	SortOrder   int      `json:"sortOrder"` // Optional; defaults to 0.
}

// updateProjectRequest captures optional fields for partial updates.
type updateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	PrimaryTags *[]string `json:"primaryTags"`
	DemoURL     *string   `json:"demoUrl"`
	GithubURL   *string   `json:"githubUrl"`
	IsActive    *bool     `json:"isActive"`
	SortOrder   *int      `json:"sortOrder"`
}

// Create validates and inserts a project.
func (h *ProjectAdminHandler) Create(c *gin.Context) {
	var body createProjectRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"title":       body.Title,
		"description": body.Description,
		"image":       body.Image,
		"category":    body.Category,
		"demoUrl":     body.DemoURL,
		"githubUrl":   body.GithubURL,
	} {
		if blank(value) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, validationError(missing...))
		return
	}

	project := models.Project{
		Title:       body.Title,
		Description: body.Description,
		Image:       body.Image,
		Category:    body.Category,
		Tags:        datatypes.NewJSONSlice(body.Tags),
		PrimaryTags: datatypes.NewJSONSlice(body.PrimaryTags),
		DemoURL:     body.DemoURL,
		GithubURL:   body.GithubURL,
		IsActive:    body.IsActive == nil || *body.IsActive,
		SortOrder:   body.SortOrder,
	}
	if errCreate := h.projects.Create(c.Request.Context(), &project); errCreate != nil {
		log.WithError(errCreate).Error("create project failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": gin.H{"id": project.ID, "title": project.Title},
	})
}

// Update applies a partial payload; unspecified fields keep prior values.
func (h *ProjectAdminHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project ID"})
		return
	}

	var body updateProjectRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	changes := map[string]any{}
	if body.Title != nil {
		changes["title"] = *body.Title
	}
	if body.Description != nil {
		changes["description"] = *body.Description
	}
	if body.Image != nil {
		changes["image"] = *body.Image
	}
	if body.Category != nil {
		changes["category"] = *body.Category
	}
	if body.Tags != nil {
		changes["tags"] = datatypes.NewJSONSlice(*body.Tags)
	}
	if body.PrimaryTags != nil {
		changes["primary_tags"] = datatypes.NewJSONSlice(*body.PrimaryTags)
	}
	if body.DemoURL != nil {
		changes["demo_url"] = *body.DemoURL
	}
	if body.GithubURL != nil {
		changes["github_url"] = *body.GithubURL
	}
	if body.IsActive != nil {
		changes["is_active"] = *body.IsActive
	}
	if body.SortOrder != nil {
		changes["sort_order"] = *body.SortOrder
	}

	project, errUpdate := h.projects.Update(c.Request.Context(), id, changes)
	if errUpdate != nil {
		if errors.Is(errUpdate, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		log.WithError(errUpdate).Error("update project failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": gin.H{"id": project.ID, "title": project.Title},
	})
}

// Delete removes a project; deleting a missing ID is still a success.
func (h *ProjectAdminHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project ID"})
		return
	}
	if errDelete := h.projects.Delete(c.Request.Context(), id); errDelete != nil {
		log.WithError(errDelete).Error("delete project failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
