package notificationstore_test

import (
	"testing"

	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notificationstore.New(db)

	n, err := store.Create(ctx, "Campaña lista", "La campaña Verano 2026 fue creada")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if n.Read {
		t.Error("new notification must start unread")
	}

	list, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].Title != "Campaña lista" {
		t.Errorf("List() = %+v", list)
	}
}

func TestMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notificationstore.New(db)

	n, err := store.Create(ctx, "t", "m")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	list, err := store.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !list[0].Read {
		t.Error("notification should be read")
	}

	if err := store.MarkRead(ctx, primitive.NewObjectID()); err != notificationstore.ErrNotFound {
		t.Errorf("MarkRead() unknown id error = %v, want ErrNotFound", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notificationstore.New(db)

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, "t", "m"); err != nil {
			t.Fatal(err)
		}
	}

	updated, err := store.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if updated != 3 {
		t.Errorf("updated = %d, want 3", updated)
	}

	// Second pass has nothing left to flip.
	updated, err = store.MarkAllRead(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if updated != 0 {
		t.Errorf("updated = %d, want 0", updated)
	}
}
