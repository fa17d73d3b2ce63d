package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"shopadmin/internal/http/handlers"
	"shopadmin/internal/identity"
	"shopadmin/internal/repos"
)

const testSecret = "test-secret"

// newTestApp builds the full route surface over a fresh in-memory database
// with two tenants: store1 owned by u-alice, store2 owned by u-bob.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// in-memory sqlite databases are per-connection
	db.SetMaxOpenConns(1)

	fixtures := `
	INSERT INTO stores(id,name,user_id,address) VALUES
	  ('store1','Alice Goods','u-alice','1 First St'),
	  ('store2','Bob Wares','u-bob','2 Second St');

	INSERT INTO billboards(id,store_id,label,image_url,created_at) VALUES
	  ('bb-1','store1','Spring','https://cdn.test/bb1.png','2024-01-01 00:00:00'),
	  ('bb-2','store2','Fall','https://cdn.test/bb2.png','2024-01-02 00:00:00');

	INSERT INTO categories(id,store_id,billboard_id,name) VALUES
	  ('cat-1','store1','bb-1','Shirts'),
	  ('cat-2','store2','bb-2','Hats');

	INSERT INTO sizes(id,store_id,name,value) VALUES
	  ('size-1','store1','Medium','M'),
	  ('size-2','store2','Large','L');

	INSERT INTO colors(id,store_id,name,value) VALUES
	  ('color-1','store1','Black','#000000'),
	  ('color-2','store2','White','#ffffff');

	INSERT INTO products(id,store_id,category_id,size_id,color_id,name,price,is_featured,is_archived,created_at) VALUES
	  ('p-feat','store1','cat-1','size-1','color-1','Featured Tee',19.99,1,0,'2024-02-01 00:00:00'),
	  ('p-plain','store1','cat-1','size-1','color-1','Plain Tee',14.99,0,0,'2024-02-02 00:00:00'),
	  ('p-gone','store1','cat-1','size-1','color-1','Old Tee',9.99,1,1,'2024-02-03 00:00:00'),
	  ('p-bob','store2','cat-2','size-2','color-2','Bob Hat',29.99,0,0,'2024-02-04 00:00:00');

	INSERT INTO product_images(id,product_id,url) VALUES
	  ('img-1','p-feat','https://cdn.test/feat-1.png'),
	  ('img-2','p-feat','https://cdn.test/feat-2.png'),
	  ('img-3','p-plain','https://cdn.test/plain.png'),
	  ('img-4','p-gone','https://cdn.test/gone.png'),
	  ('img-5','p-bob','https://cdn.test/bob.png');

	INSERT INTO orders(id,store_id,phone,address,is_paid) VALUES
	  ('o-1','store1','+1-555-0101','3 Buyer Rd',1),
	  ('o-2','store2','+1-555-0202','4 Buyer Rd',0);

	INSERT INTO order_items(id,order_id,product_id) VALUES
	  ('oi-1','o-1','p-feat'),
	  ('oi-2','o-2','p-bob');
	`
	if _, err := db.Exec(fixtures); err != nil {
		t.Fatalf("fixtures: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal error")
		},
	})
	handlers.Register(app, handlers.NewDeps(db), identity.NewVerifier(testSecret))
	return app, db
}

func token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := identity.NewVerifier(testSecret).Sign(userID)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// doJSON fires a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func count(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
