package handlers

import (
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TechStackAdminHandler manages admin CRUD for tech-stack entries.
type TechStackAdminHandler struct {
	tech *store.TechStackStore
}

// NewTechStackAdminHandler constructs a TechStackAdminHandler.
func NewTechStackAdminHandler(tech *store.TechStackStore) *TechStackAdminHandler {
	return &TechStackAdminHandler{tech: tech}
}

// createTechStackRequest captures the payload for creating an entry.
type createTechStackRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Bg          string `json:"bg"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

// updateTechStackRequest captures optional fields for partial updates.
type updateTechStackRequest struct {
	Name        *string `json:"name"`
	Icon        *string `json:"icon"`
	Bg          *string `json:"bg"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}

// Create validates and inserts a tech-stack entry.
func (h *TechStackAdminHandler) Create(c *gin.Context) {
	var body createTechStackRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"name":        body.Name,
		"icon":        body.Icon,
		"bg":          body.Bg,
		"description": body.Description,
		"category":    body.Category,
	} {
		if blank(value) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, validationError(missing...))
		return
	}

	tech := models.TechStack{
		Name:        body.Name,
		Icon:        body.Icon,
		Bg:          body.Bg,
		Description: body.Description,
		Category:    body.Category,
		IsActive:    body.IsActive == nil || *body.IsActive,
		SortOrder:   body.SortOrder,
	}
	if errCreate := h.tech.Create(c.Request.Context(), &tech); errCreate != nil {
		log.WithError(errCreate).Error("create tech stack failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create tech stack"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Tech stack created successfully",
		"tech":    gin.H{"id": tech.ID, "name": tech.Name},
	})
}

// Update applies a partial payload; unspecified fields keep prior values.
func (h *TechStackAdminHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tech stack ID"})
		return
	}

	var body updateTechStackRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	changes := map[string]any{}
	if body.Name != nil {
		changes["name"] = *body.Name
	}
	if body.Icon != nil {
		changes["icon"] = *body.Icon
	}
	if body.Bg != nil {
		changes["bg"] = *body.Bg
	}
	if body.Description != nil {
		changes["description"] = *body.Description
	}
	if body.Category != nil {
		changes["category"] = *body.Category
	}
	if body.IsActive != nil {
		changes["is_active"] = *body.IsActive
	}
	if body.SortOrder != nil {
		changes["sort_order"] = *body.SortOrder
	}

	tech, errUpdate := h.tech.Update(c.Request.Context(), id, changes)
	if errUpdate != nil {
		if errors.Is(errUpdate, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tech stack not found"})
			return
		}
		log.WithError(errUpdate).Error("update tech stack failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update tech stack"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tech stack updated successfully",
		"tech":    gin.H{"id": tech.ID, "name": tech.Name},
	})
}

// Delete removes an entry; deleting a missing ID is still a success.
func (h *TechStackAdminHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tech stack ID"})
		return
	}
	if errDelete := h.tech.Delete(c.Request.Context(), id); errDelete != nil {
		log.WithError(errDelete).Error("delete tech stack failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete tech stack"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tech stack deleted successfully"})
}
