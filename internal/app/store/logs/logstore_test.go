package logstore_test

import (
	"testing"
	"time"

	logstore "github.com/dalemusser/volunteerhub/internal/app/store/logs"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/volunteerhub/internal/testutil"
)

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := logstore.New(db)

	entry, err := store.Create(ctx, models.LogSourceBot, models.LogLevelWarning, "retrying upstream", map[string]any{"attempt": 2})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if entry.Source != models.LogSourceBot || entry.Level != models.LogLevelWarning {
		t.Errorf("entry = %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestListFiltersAndOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := logstore.New(db)

	if _, err := store.Create(ctx, models.LogSourceBot, models.LogLevelInfo, "older bot entry", nil); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := store.Create(ctx, models.LogSourceBot, models.LogLevelInfo, "newer bot entry", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Create(ctx, models.LogSourceFrontend, models.LogLevelError, "frontend crash", nil); err != nil {
		t.Fatal(err)
	}

	t.Run("all sources", func(t *testing.T) {
		logs, err := store.List(ctx, "", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(logs) != 3 {
			t.Errorf("got %d logs, want 3", len(logs))
		}
	})

	t.Run("by source newest first", func(t *testing.T) {
		logs, err := store.List(ctx, models.LogSourceBot, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(logs) != 2 {
			t.Fatalf("got %d logs, want 2", len(logs))
		}
		if logs[0].Message != "newer bot entry" {
			t.Errorf("first = %q, want newest", logs[0].Message)
		}
	})

	t.Run("limit", func(t *testing.T) {
		logs, err := store.List(ctx, "", 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(logs) != 1 {
			t.Errorf("got %d logs, want 1", len(logs))
		}
	})
}
