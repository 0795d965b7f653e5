package service

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *db.Store {
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

// stepClock 每次调用前进一秒，保证时间戳可区分。
func stepClock(start time.Time) func() time.Time {
	current := start.Add(-time.Second)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func mustEqualJSON(t *testing.T, want string, got []byte) {
	t.Helper()

	var w, g interface{}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("bad expected json: %v", err)
	}
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("stored json does not decode: %v (%s)", err, got)
	}
	if !reflect.DeepEqual(w, g) {
		t.Fatalf("json mismatch\nwant %s\ngot  %s", want, got)
	}
}
