package db

import (
	"fmt"

	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	return conn.AutoMigrate(
		&models.Contact{},
		&models.User{},
		&models.Project{},
		&models.TechStack{},
		&models.BlogPost{},
		&models.Admin{},
		&models.AdminSession{},
	)
}
