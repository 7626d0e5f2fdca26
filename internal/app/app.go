package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/devfolio/portfolio-api/internal/config"
	"github.com/devfolio/portfolio-api/internal/db"
	adminapi "github.com/devfolio/portfolio-api/internal/http/api/admin"
	"github.com/devfolio/portfolio-api/internal/http/api/front"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg config.Config) error {
	conn, err := db.Open(cfg.Database.ResolveDSN())
	if err != nil {
		return err
	}
	return db.Migrate(conn)
}

// RunServer boots the portfolio API server.
func RunServer(ctx context.Context, cfg config.Config) error {
	conn, err := db.Open(cfg.Database.ResolveDSN())
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	stores := store.New(conn)

	// One-shot cleanup; expired rows are otherwise filtered at lookup time.
	if purged, errPurge := stores.Sessions.PurgeExpired(ctx); errPurge != nil {
		log.WithError(errPurge).Warn("purge expired sessions failed")
	} else if purged > 0 {
		log.Infof("purged %d expired admin sessions", purged)
	}

	engine := BuildEngine(conn, stores, cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Infof("listening on %s", cfg.Server.Addr())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

// BuildEngine assembles the gin engine with all routes and middleware.
func BuildEngine(conn *gorm.DB, stores *store.Stores, cfg config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(requestLogger(), gin.Recovery())

	front.RegisterSiteRoutes(engine, conn, stores, cfg.Public)
	adminapi.RegisterAdminRoutes(engine, stores, cfg.Auth)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
	return engine
}

// requestLogger emits one access-log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
