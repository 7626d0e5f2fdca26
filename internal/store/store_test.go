package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/portfolio-api/internal/db"
	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/security"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestStores opens a fresh in-memory database with the full schema.
func newTestStores(t *testing.T) *Stores {
	t.Helper()
	dsn := fmt.Sprintf("file:store_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return New(conn)
}

// newTestAdmin inserts an active admin with a hashed password.
func newTestAdmin(t *testing.T, stores *Stores, username string) models.Admin {
	t.Helper()
	hash, err := security.HashPassword("password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.Admin{
		Username: username,
		Password: hash,
		Email:    username + "@example.com",
		IsActive: true,
	}
	if errCreate := stores.Admins.Create(context.Background(), &admin); errCreate != nil {
		t.Fatalf("create admin: %v", errCreate)
	}
	return admin
}
