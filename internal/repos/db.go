package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates all tables if missing. Safe to run on every start.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Stores (one row per tenant; user_id is the owning identity-provider subject)
CREATE TABLE IF NOT EXISTS stores(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  user_id TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_stores_user ON stores(user_id);

-- Billboards
CREATE TABLE IF NOT EXISTS billboards(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE RESTRICT,
  label TEXT NOT NULL,
  image_url TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_billboards_store ON billboards(store_id);

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE RESTRICT,
  billboard_id TEXT NOT NULL REFERENCES billboards(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_categories_store     ON categories(store_id);
CREATE INDEX IF NOT EXISTS idx_categories_billboard ON categories(billboard_id);

-- Sizes
CREATE TABLE IF NOT EXISTS sizes(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  value TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_sizes_store ON sizes(store_id);

-- Colors (value is a hex string)
CREATE TABLE IF NOT EXISTS colors(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  value TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_colors_store ON colors(store_id);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  store_id    TEXT NOT NULL REFERENCES stores(id)     ON DELETE RESTRICT,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  size_id     TEXT NOT NULL REFERENCES sizes(id)      ON DELETE RESTRICT,
  color_id    TEXT NOT NULL REFERENCES colors(id)     ON DELETE RESTRICT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price > 0),
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_archived INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_store      ON products(store_id);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

CREATE TABLE IF NOT EXISTS product_images(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  url TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_product_images_product ON product_images(product_id);

-- Orders arrive from the storefront checkout; this service only reads them.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE RESTRICT,
  phone   TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  is_paid INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_orders_store      ON orders(store_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  id TEXT PRIMARY KEY,
  order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id)
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
`
	_, err := db.Exec(schema)
	return err
}

// SeedIfEmpty inserts a demo tenant when the database has no stores yet, so
// a fresh checkout has something to poke at. Idempotent.
func SeedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM stores`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo store and catalog")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO stores(id,name,user_id,address) VALUES
	  ('store-demo','Demo Outfitters','u-demo','1 Demo Way, College Park MD')`)

	tx.MustExec(`INSERT INTO billboards(id,store_id,label,image_url) VALUES
	  ('bb-summer','store-demo','Summer Sale','https://cdn.example.com/billboards/summer.jpg'),
	  ('bb-new','store-demo','New Arrivals','https://cdn.example.com/billboards/new.jpg')`)

	tx.MustExec(`INSERT INTO categories(id,store_id,billboard_id,name) VALUES
	  ('cat-shirts','store-demo','bb-summer','Shirts'),
	  ('cat-shoes','store-demo','bb-new','Shoes')`)

	tx.MustExec(`INSERT INTO sizes(id,store_id,name,value) VALUES
	  ('size-m','store-demo','Medium','M'),
	  ('size-l','store-demo','Large','L')`)

	tx.MustExec(`INSERT INTO colors(id,store_id,name,value) VALUES
	  ('color-black','store-demo','Black','#000000'),
	  ('color-red','store-demo','Red','#ff0000')`)

	tx.MustExec(`INSERT INTO products(id,store_id,category_id,size_id,color_id,name,price,is_featured,is_archived) VALUES
	  ('prod-tee','store-demo','cat-shirts','size-m','color-black','Logo Tee',19.99,1,0),
	  ('prod-runner','store-demo','cat-shoes','size-l','color-red','Retro Runner',89.50,0,0)`)

	tx.MustExec(`INSERT INTO product_images(id,product_id,url) VALUES
	  ('img-tee-1','prod-tee','https://cdn.example.com/products/tee-front.jpg'),
	  ('img-tee-2','prod-tee','https://cdn.example.com/products/tee-back.jpg'),
	  ('img-runner-1','prod-runner','https://cdn.example.com/products/runner.jpg')`)

	tx.MustExec(`INSERT INTO orders(id,store_id,phone,address,is_paid) VALUES
	  ('order-demo','store-demo','+1-301-555-0100','2 Buyer Blvd',1)`)

	tx.MustExec(`INSERT INTO order_items(id,order_id,product_id) VALUES
	  ('oi-demo-1','order-demo','prod-tee')`)

	return tx.Commit()
}
