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

// TechStackHandler serves public tech-stack reads.
type TechStackHandler struct {
	tech         *store.TechStackStore
	exposeHidden bool
}

// NewTechStackHandler constructs a TechStackHandler.
func NewTechStackHandler(tech *store.TechStackStore, exposeHidden bool) *TechStackHandler {
	return &TechStackHandler{tech: tech, exposeHidden: exposeHidden}
}

// List returns active entries in listing order.
func (h *TechStackHandler) List(c *gin.Context) {
	rows, errList := h.tech.ListActive(c.Request.Context())
	if errList != nil {
		log.WithError(errList).Error("list tech stack failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve technology stack"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns a single entry by numeric ID.
func (h *TechStackHandler) Get(c *gin.Context) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tech stack ID"})
		return
	}

	tech, errGet := h.tech.Get(c.Request.Context(), id)
	if errGet != nil {
		if errors.Is(errGet, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tech stack not found"})
			return
		}
		log.WithError(errGet).Error("get tech stack failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tech stack"})
		return
	}
	if !h.exposeHidden && !tech.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tech stack not found"})
		return
	}
	c.JSON(http.StatusOK, tech)
}
