package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func strPtr(v string) *string {
	return &v
}

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(setupTestStore(t))

	defaults := svc.Defaults("p1")
	if defaults.ProjectID != "p1" {
		t.Fatalf("expected project id, got %q", defaults.ProjectID)
	}
	if *defaults.PrimaryFont != "Inter" || *defaults.PrimaryColor != "#3B82F6" || *defaults.Spacing != "16px" {
		t.Fatalf("unexpected theme defaults: %+v", defaults)
	}
	if defaults.SiteName == nil || *defaults.SiteName != "" {
		t.Fatalf("expected empty site name")
	}
}

func TestSettingsSaveInsertsThenMerges(t *testing.T) {
	store := setupTestStore(t)
	if _, err := NewProjectService(store).Save(context.Background(), ProjectInput{ID: "p1", Name: "Site"}); err != nil {
		t.Fatalf("save project: %v", err)
	}
	svc := NewSettingsService(store)
	svc.now = stepClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if _, err := svc.Get(ctx, "p1"); !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}

	first, err := svc.Save(ctx, "p1", SettingsInput{SiteName: strPtr("Acme"), PrimaryColor: strPtr("#000000")})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamps, got %+v", first)
	}
	if first.MetaTitle != nil {
		t.Fatalf("unsupplied field should stay null")
	}

	second, err := svc.Save(ctx, "p1", SettingsInput{MetaTitle: strPtr("Acme | Home")})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("identity must be preserved: %s/%v -> %s/%v", first.ID, first.CreatedAt, second.ID, second.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("expected updated_at to advance")
	}
	if second.SiteName == nil || *second.SiteName != "Acme" {
		t.Fatalf("expected site name to be kept, got %v", second.SiteName)
	}
	if second.MetaTitle == nil || *second.MetaTitle != "Acme | Home" {
		t.Fatalf("expected meta title to be set, got %v", second.MetaTitle)
	}

	got, err := svc.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if *got.PrimaryColor != "#000000" {
		t.Fatalf("expected primary color to persist, got %s", *got.PrimaryColor)
	}
}

func TestSettingsSaveUnknownProject(t *testing.T) {
	svc := NewSettingsService(setupTestStore(t))

	if _, err := svc.Save(context.Background(), "ghost", SettingsInput{SiteName: strPtr("x")}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
