package services

import (
	"errors"
	"testing"

	"shopadmin/internal/repos"
)

func TestAuthorizeStoreOwner(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// in-memory sqlite databases are per-connection
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`INSERT INTO stores(id,name,user_id) VALUES ('s1','Shop','u1')`); err != nil {
		t.Fatalf("fixtures: %v", err)
	}

	svc := NewOwnershipService(repos.NewStoreRepo(db))

	st, err := svc.AuthorizeStoreOwner("u1", "s1")
	if err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if st.ID != "s1" || st.UserID != "u1" {
		t.Fatalf("wrong store returned: %+v", st)
	}

	// another tenant's store and a nonexistent store are indistinguishable
	if _, err := svc.AuthorizeStoreOwner("u2", "s1"); !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("foreign store: want ErrStoreNotFound, got %v", err)
	}
	if _, err := svc.AuthorizeStoreOwner("u1", "ghost"); !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("absent store: want ErrStoreNotFound, got %v", err)
	}
}
