package userstore_test

import (
	"testing"

	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/indexes"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/volunteerhub/internal/testutil"
)

func TestCreateNormalizesAndDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	u, err := store.Create(ctx, models.User{
		Email:        " Ana@Example.COM ",
		FullName:     "  Ana García ",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Errorf("Email = %q", u.Email)
	}
	if u.FullName != "Ana García" {
		t.Errorf("FullName = %q", u.FullName)
	}
	if u.Role != models.RoleWorker {
		t.Errorf("Role = %q, want %q", u.Role, models.RoleWorker)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll() error = %v", err)
	}
	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{Email: "ana@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	// Same email in a different case must still collide.
	_, err := store.Create(ctx, models.User{Email: "ANA@example.com", PasswordHash: "x"})
	if err != userstore.ErrDuplicateEmail {
		t.Errorf("second Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestGetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	created, err := store.Create(ctx, models.User{Email: "ana@example.com", PasswordHash: "x"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.GetByEmail(ctx, " ANA@Example.com ")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Error("GetByEmail() returned wrong user")
	}

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); err != userstore.ErrNotFound {
		t.Errorf("GetByEmail() error = %v, want ErrNotFound", err)
	}
}
