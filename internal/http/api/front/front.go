package front

import (
	"github.com/devfolio/portfolio-api/internal/config"
	"github.com/devfolio/portfolio-api/internal/http/api/front/handlers"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSiteRoutes registers the public site routes: contact intake and
// the read-only project/tech-stack/blog endpoints the frontend renders from.
func RegisterSiteRoutes(r *gin.Engine, conn *gorm.DB, stores *store.Stores, publicCfg config.PublicConfig) {
	if r == nil || stores == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(conn)
	r.GET("/healthz", healthHandler.Healthz)

	api := r.Group("/api")

	contactHandler := handlers.NewContactHandler(stores.Contacts)
	api.POST("/contacts", contactHandler.Submit)
	api.GET("/contacts", contactHandler.List)

	exposeHidden := publicCfg.ExposeHidden()

	projectHandler := handlers.NewProjectHandler(stores.Projects, exposeHidden)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)

	techHandler := handlers.NewTechStackHandler(stores.TechStack, exposeHidden)
	api.GET("/tech-stack", techHandler.List)
	api.GET("/tech-stack/:id", techHandler.Get)

	blogHandler := handlers.NewBlogHandler(stores.Blog, exposeHidden)
	api.GET("/blog", blogHandler.List)
	api.GET("/blog/slug/:slug", blogHandler.GetBySlug)
	api.GET("/blog/:id", blogHandler.Get)
}
