package store

import (
	"context"
	"testing"

	"github.com/devfolio/portfolio-api/internal/models"
)

func TestTechStackCreateStoresInactiveFlag(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	tech := models.TechStack{Name: "Retired", Icon: "x", Bg: "bg-gray", Description: "Old", Category: "tools", IsActive: false}
	if err := stores.TechStack.Create(ctx, &tech); err != nil {
		t.Fatalf("create: %v", err)
	}

	stored, err := stores.TechStack.Get(ctx, tech.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.IsActive {
		t.Fatal("entry created with IsActive=false was stored as active")
	}

	active, err := stores.TechStack.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("inactive entry leaked into the active list: %+v", active)
	}
}
