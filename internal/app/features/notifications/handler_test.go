package notifications_test

import (
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/features/notifications"
	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestListAndMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notificationstore.New(db)
	h := notifications.NewHandler(store, zap.NewNop())

	n, err := store.Create(ctx, "Nueva campaña", "Verano 2026 está activa")
	if err != nil {
		t.Fatal(err)
	}

	rec := testutil.NewRecorder()
	h.HandleList(rec, testutil.NewRequest("GET", "/notifications"))
	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Nueva campaña")
	rec.AssertContains(t, `"read":false`)

	req := testutil.NewRequest("PATCH", "/notifications/"+n.ID.Hex()+"/read")
	req = testutil.WithChiURLParam(req, "id", n.ID.Hex())
	mark := testutil.NewRecorder()
	h.HandleMarkRead(mark, req)
	mark.AssertStatus(t, 200)
	mark.AssertContains(t, "Notification marked as read")

	after := testutil.NewRecorder()
	h.HandleList(after, testutil.NewRequest("GET", "/notifications"))
	after.AssertContains(t, `"read":true`)
}

func TestMarkReadNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := notifications.NewHandler(notificationstore.New(db), zap.NewNop())

	id := primitive.NewObjectID().Hex()
	req := testutil.NewRequest("PATCH", "/notifications/"+id+"/read")
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()
	h.HandleMarkRead(rec, req)
	rec.AssertStatus(t, 404)
}

func TestMarkAllRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notificationstore.New(db)
	h := notifications.NewHandler(store, zap.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := store.Create(ctx, "t", "m"); err != nil {
			t.Fatal(err)
		}
	}

	rec := testutil.NewRecorder()
	h.HandleMarkAllRead(rec, testutil.NewRequest("POST", "/notifications/mark-all-read"))
	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "All marked as read")

	list, err := store.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range list {
		if !n.Read {
			t.Errorf("notification %s still unread", n.ID.Hex())
		}
	}
}
