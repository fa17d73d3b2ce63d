package handlers_test

import (
	"net/http"
	"testing"
)

// Missing required fields short-circuit with a field-specific 400 before any
// database write happens.
func TestCreateValidationMessages(t *testing.T) {
	app, db := newTestApp(t)
	alice := token(t, "u-alice")

	tables := []string{"billboards", "categories", "sizes", "colors", "products", "stores"}
	before := map[string]int{}
	for _, tb := range tables {
		before[tb] = count(t, db, tb)
	}

	for _, tc := range []struct {
		path string
		body map[string]any
		want string
	}{
		{"/api/store1/billboards", map[string]any{"imageUrl": "https://cdn.test/x.png"}, "Label is required"},
		{"/api/store1/billboards", map[string]any{"label": "Sale"}, "Image URL is required"},
		{"/api/store1/categories", map[string]any{"billboardId": "bb-1"}, "Name is required"},
		{"/api/store1/categories", map[string]any{"name": "Pants"}, "Billboard ID is required"},
		{"/api/store1/sizes", map[string]any{"value": "XL"}, "Name is required"},
		{"/api/store1/sizes", map[string]any{"name": "Extra Large"}, "Value is required"},
		{"/api/store1/colors", map[string]any{"value": "#123456"}, "Name is required"},
		{"/api/store1/colors", map[string]any{"name": "Teal"}, "Value is required"},
		{"/api/store1/colors", map[string]any{"name": "Teal", "value": "teal"}, "Value must be a valid hex code"},
		{"/api/stores", map[string]any{"address": "nowhere"}, "Name is required"},
	} {
		resp := doJSON(t, app, "POST", tc.path, alice, tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("POST %s %v: want 400, got %d", tc.path, tc.body, resp.StatusCode)
		}
		if got := bodyString(t, resp); got != tc.want {
			t.Fatalf("POST %s: want body %q, got %q", tc.path, tc.want, got)
		}
	}

	for _, tb := range tables {
		if count(t, db, tb) != before[tb] {
			t.Fatalf("validation failure wrote a row to %s", tb)
		}
	}
}

func TestProductValidationMessages(t *testing.T) {
	app, db := newTestApp(t)
	alice := token(t, "u-alice")
	before := count(t, db, "products")

	full := func() map[string]any {
		return map[string]any{
			"name": "Tee", "price": 10.00,
			"colorId": "color-1", "sizeId": "size-1", "categoryId": "cat-1",
			"images": []map[string]string{{"url": "https://cdn.test/t.png"}},
		}
	}

	for _, tc := range []struct {
		drop string
		want string
	}{
		{"name", "Name is required"},
		{"price", "Price is required"},
		{"colorId", "Color ID is required"},
		{"sizeId", "Size ID is required"},
		{"categoryId", "Category ID is required"},
		{"images", "Images are required and cannot be empty"},
	} {
		body := full()
		delete(body, tc.drop)
		resp := doJSON(t, app, "POST", "/api/store1/products", alice, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("missing %s: want 400, got %d", tc.drop, resp.StatusCode)
		}
		if got := bodyString(t, resp); got != tc.want {
			t.Fatalf("missing %s: want %q, got %q", tc.drop, tc.want, got)
		}
	}

	// zero price counts as missing
	body := full()
	body["price"] = 0
	resp := doJSON(t, app, "POST", "/api/store1/products", alice, body)
	if resp.StatusCode != http.StatusBadRequest || bodyString(t, resp) != "Price is required" {
		t.Fatal("zero price accepted")
	}

	// empty image list is rejected on update too: the set can never be emptied
	body = full()
	body["images"] = []map[string]string{}
	resp = doJSON(t, app, "PATCH", "/api/store1/products/p-plain", alice, body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty images on update: want 400, got %d", resp.StatusCode)
	}

	if count(t, db, "products") != before {
		t.Fatal("validation failure wrote a product row")
	}
}

func TestMalformedJSONBodyRejected(t *testing.T) {
	app, _ := newTestApp(t)
	alice := token(t, "u-alice")

	resp := doJSON(t, app, "POST", "/api/store1/sizes", alice, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty body: want 400, got %d", resp.StatusCode)
	}
}
