package handlers_test

import (
	"net/http"
	"testing"

	"shopadmin/internal/domain"
)

func TestStoreLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	carol := token(t, "u-carol")

	resp := doJSON(t, app, "POST", "/api/stores", carol,
		map[string]any{"name": "Carol Corner", "address": "5 Main St"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: want 201, got %d", resp.StatusCode)
	}
	created := decode[domain.Store](t, resp)
	if created.UserID != "u-carol" || created.Name != "Carol Corner" {
		t.Fatalf("created store: %+v", created)
	}

	resp = doJSON(t, app, "GET", "/api/stores", carol, nil)
	stores := decode[[]domain.Store](t, resp)
	if len(stores) != 1 || stores[0].ID != created.ID {
		t.Fatalf("list own stores: %+v", stores)
	}

	resp = doJSON(t, app, "PATCH", "/api/stores/"+created.ID, carol,
		map[string]any{"name": "Carol Corner 2", "address": "6 Main St"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: want 200, got %d", resp.StatusCode)
	}
	updated := decode[domain.Store](t, resp)
	if updated.Name != "Carol Corner 2" || updated.Address != "6 Main St" {
		t.Fatalf("update not reflected: %+v", updated)
	}

	resp = doJSON(t, app, "DELETE", "/api/stores/"+created.ID, carol, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: want 200, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/api/stores/"+created.ID, carol, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: want 404, got %d", resp.StatusCode)
	}
}

func TestStoreMutationsByNonOwnerDenied(t *testing.T) {
	app, db := newTestApp(t)
	bob := token(t, "u-bob")

	resp := doJSON(t, app, "PATCH", "/api/stores/store1", bob, map[string]any{"name": "Taken Over"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("patch foreign store: want 404, got %d", resp.StatusCode)
	}
	if got := bodyString(t, resp); got != "Store not found" {
		t.Fatalf("body: %q", got)
	}

	resp = doJSON(t, app, "DELETE", "/api/stores/store1", bob, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete foreign store: want 404, got %d", resp.StatusCode)
	}

	var name string
	if err := db.Get(&name, `SELECT name FROM stores WHERE id='store1'`); err != nil {
		t.Fatal(err)
	}
	if name != "Alice Goods" {
		t.Fatalf("foreign store mutated: %q", name)
	}
}

// Deleting a store takes its whole catalog and order history with it.
func TestStoreDeleteCascades(t *testing.T) {
	app, db := newTestApp(t)
	alice := token(t, "u-alice")

	resp := doJSON(t, app, "DELETE", "/api/stores/store1", alice, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: want 200, got %d: %s", resp.StatusCode, bodyString(t, resp))
	}

	for _, tb := range []string{"billboards", "categories", "sizes", "colors", "products", "orders"} {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+tb+` WHERE store_id='store1'`); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Fatalf("%s rows survived store delete", tb)
		}
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM product_images`); err != nil {
		t.Fatal(err)
	}
	if n != 1 { // only store2's product image remains
		t.Fatalf("want 1 surviving image row, got %d", n)
	}

	// store2 untouched
	resp = doJSON(t, app, "GET", "/api/store2/products", "", nil)
	if ps := decode[[]domain.Product](t, resp); len(ps) != 1 {
		t.Fatalf("store2 catalog affected: %+v", ps)
	}
}
