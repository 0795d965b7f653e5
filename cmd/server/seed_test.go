package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/render"
	"github.com/sitebuilder/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestStore(t *testing.T) *db.Store {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	store, err := db.Open(dsn, db.DefaultWorkers, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestSeedDemoProjectIsRepeatable(t *testing.T) {
	store := setupSeedTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seedDemoProject(ctx, store, "demo"); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}

	pages, err := service.NewPageService(store).List(ctx, "demo")
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 demo pages, got %d", len(pages))
	}
	if !pages[0].IsHome || pages[1].IsHome {
		t.Fatalf("expected the first page to be home")
	}

	menu, err := service.NewProjectService(store).GetSharedMenu(ctx, "demo")
	if err != nil || menu == nil {
		t.Fatalf("expected shared menu, got %s (%v)", menu, err)
	}
}

func TestSeededHomePageRenders(t *testing.T) {
	store := setupSeedTestStore(t)
	ctx := context.Background()

	if err := seedDemoProject(ctx, store, "demo"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	pages, err := service.NewPageService(store).List(ctx, "demo")
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}

	blocks, err := render.DecodeBlocks(pages[0].Blocks)
	if err != nil {
		t.Fatalf("decode blocks: %v", err)
	}
	document, err := render.New().Render(blocks)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Atelier Demo", "Bine ați venit", "<strong>rapide</strong>"} {
		if !strings.Contains(document, want) {
			t.Fatalf("expected %q in rendered home page", want)
		}
	}
}

func TestRenderCommandRequiresPageFlag(t *testing.T) {
	cmd := newRenderCommand()
	cmd.SetArgs([]string{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing --page to fail")
	}
}
