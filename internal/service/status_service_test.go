package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStatusCreateRejectsBlankName(t *testing.T) {
	svc := NewStatusService(setupTestStore(t))

	if _, err := svc.Create(context.Background(), "   "); !errors.Is(err, ErrClientNameMissing) {
		t.Fatalf("expected ErrClientNameMissing, got %v", err)
	}
}

func TestStatusListNewestFirst(t *testing.T) {
	svc := NewStatusService(setupTestStore(t))
	svc.now = stepClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		check, err := svc.Create(ctx, name)
		if err != nil {
			t.Fatalf("create status check: %v", err)
		}
		if check.ID == "" || check.Timestamp.Location() != time.UTC {
			t.Fatalf("expected id and UTC timestamp, got %+v", check)
		}
	}

	checks, err := svc.List(ctx, 0)
	if err != nil {
		t.Fatalf("list status checks: %v", err)
	}
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	if checks[0].ClientName != "third" || checks[2].ClientName != "first" {
		t.Fatalf("expected newest first, got %s..%s", checks[0].ClientName, checks[2].ClientName)
	}

	limited, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("list with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(limited))
	}
}
