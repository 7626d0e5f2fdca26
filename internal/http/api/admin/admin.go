package admin

import (
	"net/http"
	"strings"
	"time"

	"github.com/devfolio/portfolio-api/internal/config"
	"github.com/devfolio/portfolio-api/internal/http/api/admin/handlers"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers admin authentication plus all write
// endpoints. Blog writes live under /api/blog for frontend compatibility
// but still carry the session middleware.
func RegisterAdminRoutes(r *gin.Engine, stores *store.Stores, authCfg config.AuthConfig) {
	if r == nil || stores == nil {
		return
	}

	sessionTTL := time.Duration(authCfg.SessionTTLHours) * time.Hour
	requireAdmin := sessionAuthMiddleware(stores.Sessions)

	adminGroup := r.Group("/api/admin")

	authHandler := handlers.NewAuthHandler(stores.Admins, stores.Sessions, sessionTTL)
	adminGroup.POST("/login", authHandler.Login)
	adminGroup.POST("/create-default", authHandler.CreateDefault)
	adminGroup.POST("/logout", requireAdmin, authHandler.Logout)
	adminGroup.GET("/me", requireAdmin, authHandler.Me)

	projectHandler := handlers.NewProjectAdminHandler(stores.Projects)
	adminGroup.POST("/projects", requireAdmin, projectHandler.Create)
	adminGroup.PUT("/projects/:id", requireAdmin, projectHandler.Update)
	adminGroup.DELETE("/projects/:id", requireAdmin, projectHandler.Delete)

	techHandler := handlers.NewTechStackAdminHandler(stores.TechStack)
	adminGroup.POST("/tech-stack", requireAdmin, techHandler.Create)
	adminGroup.PUT("/tech-stack/:id", requireAdmin, techHandler.Update)
	adminGroup.DELETE("/tech-stack/:id", requireAdmin, techHandler.Delete)

	blogHandler := handlers.NewBlogAdminHandler(stores.Blog)
	api := r.Group("/api")
	api.POST("/blog", requireAdmin, blogHandler.Create)
	api.PUT("/blog/:id", requireAdmin, blogHandler.Update)
	api.DELETE("/blog/:id", requireAdmin, blogHandler.Delete)
}

// sessionAuthMiddleware validates the bearer session token and loads the
// owning admin into the request context.
func sessionAuthMiddleware(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No session token provided"})
			return
		}

		session, errGet := sessions.Get(c.Request.Context(), token)
		if errGet != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session"})
			return
		}

		c.Set(handlers.ContextAdminKey, session.Admin)
		c.Set(handlers.ContextSessionTokenKey, session.ID)
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}
