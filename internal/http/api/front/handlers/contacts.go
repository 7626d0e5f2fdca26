package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// emailPattern is deliberately loose: anything@anything.anything.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contacts *store.ContactStore
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contacts *store.ContactStore) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// contactRequest defines the contact-form payload.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit validates and persists a contact-form submission. No notification
// email is sent; the row itself is the inbox.
func (h *ContactHandler) Submit(c *gin.Context) {
	var body contactRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}

	if strings.TrimSpace(body.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}
	if !emailPattern.MatchString(body.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	contact := models.Contact{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	}
	if errCreate := h.contacts.Create(c.Request.Context(), &contact); errCreate != nil {
		log.WithError(errCreate).Error("contact form insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong. Please try again later."})
		return
	}

	log.WithFields(log.Fields{"id": contact.ID, "email": contact.Email}).Info("new contact form submission")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you! Your message has been sent successfully. I'll get back to you soon.",
		"contact": gin.H{
			"id":      contact.ID,
			"name":    contact.Name,
			"email":   contact.Email,
			"subject": contact.Subject,
		},
	})
}

// List returns all submissions, oldest first.
func (h *ContactHandler) List(c *gin.Context) {
	rows, errList := h.contacts.List(c.Request.Context())
	if errList != nil {
		log.WithError(errList).Error("list contacts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve contacts"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
