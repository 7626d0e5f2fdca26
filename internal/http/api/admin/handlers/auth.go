package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/security"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Context keys shared between the session middleware and handlers.
const (
	// ContextAdminKey holds the authenticated models.Admin.
	ContextAdminKey = "admin"
	// ContextSessionTokenKey holds the presented session token.
	ContextSessionTokenKey = "sessionToken"
)

// Bootstrap credentials for the create-default endpoint.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "password"
	defaultAdminEmail    = "admin@example.com"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	admins     *store.AdminStore
	sessions   *store.SessionStore
	sessionTTL time.Duration
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(admins *store.AdminStore, sessions *store.SessionStore, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{admins: admins, sessions: sessions, sessionTTL: sessionTTL}
}

// loginRequest defines the request body for admin login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and mints a bearer session. Unknown username,
// inactive account, and wrong password all collapse into the same 401 so
// the response never reveals which part failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	username := strings.TrimSpace(body.Username)
	password := body.Password
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	admin, errFind := h.admins.GetByUsername(c.Request.Context(), username)
	if errFind != nil {
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			log.WithError(errFind).Error("admin lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if !admin.IsActive || !security.CheckPassword(admin.Password, password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	session, errCreate := h.sessions.Create(c.Request.Context(), admin.ID, h.sessionTTL)
	if errCreate != nil {
		log.WithError(errCreate).Error("session create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"sessionToken": session.ID,
		"admin":        adminProjection(admin),
	})
}

// Logout deletes the presented session. Deleting an already-deleted
// session is a success.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(ContextSessionTokenKey)
	if token != "" {
		if errDelete := h.sessions.Delete(c.Request.Context(), token); errDelete != nil {
			log.WithError(errDelete).Error("session delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the authenticated admin's public projection.
func (h *AuthHandler) Me(c *gin.Context) {
	admin, ok := c.Value(ContextAdminKey).(models.Admin)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": adminProjection(admin)})
}

// CreateDefault idempotently provisions the bootstrap admin account.
func (h *AuthHandler) CreateDefault(c *gin.Context) {
	_, errFind := h.admins.GetByUsername(c.Request.Context(), defaultAdminUsername)
	if errFind == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Default admin already exists"})
		return
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		log.WithError(errFind).Error("default admin lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create default admin"})
		return
	}

	hash, errHash := security.HashPassword(defaultAdminPassword)
	if errHash != nil {
		log.WithError(errHash).Error("default admin hash failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create default admin"})
		return
	}

	admin := models.Admin{
		Username: defaultAdminUsername,
		Password: hash,
		Email:    defaultAdminEmail,
		IsActive: true,
	}
	if errCreate := h.admins.Create(c.Request.Context(), &admin); errCreate != nil {
		log.WithError(errCreate).Error("default admin create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create default admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default admin created successfully"})
}

// adminProjection returns the public fields of an admin, never the hash.
func adminProjection(admin models.Admin) gin.H {
	return gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"email":    admin.Email,
	}
}
