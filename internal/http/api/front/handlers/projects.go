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

// ProjectHandler serves public project reads.
type ProjectHandler struct {
	projects     *store.ProjectStore
	exposeHidden bool // When false, inactive rows 404 on the by-ID path.
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(projects *store.ProjectStore, exposeHidden bool) *ProjectHandler {
	return &ProjectHandler{projects: projects, exposeHidden: exposeHidden}
}

// List returns active projects in listing order.
func (h *ProjectHandler) List(c *gin.Context) {
	rows, errList := h.projects.ListActive(c.Request.Context())
	if errList != nil {
		log.WithError(errList).Error("list projects failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns a single project by numeric ID.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project ID"})
		return
	}

	project, errGet := h.projects.Get(c.Request.Context(), id)
	if errGet != nil {
		if errors.Is(errGet, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		log.WithError(errGet).Error("get project failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve project"})
		return
	}
	if !h.exposeHidden && !project.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}
