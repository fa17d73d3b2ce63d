package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"shopadmin/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, store_id, category_id, size_id, color_id, name, price,
  is_featured, is_archived, created_at, COALESCE(updated_at,'') AS updated_at`

// Filter narrows the public product listing. A nil Featured means "unset":
// no featured filter is applied. Archived products are never listed.
type Filter struct {
	CategoryID string
	SizeID     string
	ColorID    string
	Featured   *bool
}

func (r *ProductRepo) ListByStore(storeID string, f Filter) ([]domain.Product, error) {
	where := `store_id = ? AND is_archived = 0`
	args := []any{storeID}
	if f.CategoryID != "" {
		where += ` AND category_id = ?`
		args = append(args, f.CategoryID)
	}
	if f.SizeID != "" {
		where += ` AND size_id = ?`
		args = append(args, f.SizeID)
	}
	if f.ColorID != "" {
		where += ` AND color_id = ?`
		args = append(args, f.ColorID)
	}
	if f.Featured != nil {
		where += ` AND is_featured = ?`
		args = append(args, *f.Featured)
	}

	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE `+where+`
	  ORDER BY created_at DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	if err := r.attach(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	if err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		return domain.Product{}, err
	}
	one := []domain.Product{p}
	if err := r.attach(one); err != nil {
		return domain.Product{}, err
	}
	return one[0], nil
}

// attach loads the declared includes (images, category, size, color) for a
// batch of products in one query per relation.
func (r *ProductRepo) attach(ps []domain.Product) error {
	if len(ps) == 0 {
		return nil
	}
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}

	query, args, err := sqlx.In(`SELECT id, product_id, url FROM product_images WHERE product_id IN (?)`, ids)
	if err != nil {
		return err
	}
	var images []domain.Image
	if err := r.db.Select(&images, query, args...); err != nil {
		return err
	}
	byProduct := map[string][]domain.Image{}
	for _, img := range images {
		byProduct[img.ProductID] = append(byProduct[img.ProductID], img)
	}

	cats := map[string]*domain.Category{}
	sizes := map[string]*domain.Size{}
	colors := map[string]*domain.Color{}
	for i := range ps {
		p := &ps[i]
		p.Images = byProduct[p.ID]
		if p.Images == nil {
			p.Images = []domain.Image{}
		}

		if cats[p.CategoryID] == nil {
			var c domain.Category
			if err := r.db.Get(&c, `SELECT `+categoryCols+` FROM categories WHERE id = ?`, p.CategoryID); err != nil {
				return err
			}
			cats[p.CategoryID] = &c
		}
		if sizes[p.SizeID] == nil {
			var s domain.Size
			if err := r.db.Get(&s, `SELECT `+sizeCols+` FROM sizes WHERE id = ?`, p.SizeID); err != nil {
				return err
			}
			sizes[p.SizeID] = &s
		}
		if colors[p.ColorID] == nil {
			var c domain.Color
			if err := r.db.Get(&c, `SELECT `+colorCols+` FROM colors WHERE id = ?`, p.ColorID); err != nil {
				return err
			}
			colors[p.ColorID] = &c
		}
		p.Category = cats[p.CategoryID]
		p.Size = sizes[p.SizeID]
		p.Color = colors[p.ColorID]
	}
	return nil
}

// NewProduct carries the writable columns of a product row.
type NewProduct struct {
	StoreID    string
	CategoryID string
	SizeID     string
	ColorID    string
	Name       string
	Price      decimal.Decimal
	IsFeatured bool
	IsArchived bool
	ImageURLs  []string
}

// Create inserts the product row and its image set in one transaction.
func (r *ProductRepo) Create(id string, p NewProduct) (domain.Product, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Product{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO products(id, store_id, category_id, size_id, color_id, name, price, is_featured, is_archived)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.StoreID, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price, p.IsFeatured, p.IsArchived); err != nil {
		return domain.Product{}, err
	}
	if err := insertImages(tx, id, p.ImageURLs); err != nil {
		return domain.Product{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Product{}, err
	}
	return r.Get(id)
}

// Update rewrites the product row and replaces the entire image set.
// Image lists are never patched incrementally; both steps commit together so
// a failure can't leave the product with zero images.
func (r *ProductRepo) Update(id string, p NewProduct) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  UPDATE products
	  SET category_id = ?, size_id = ?, color_id = ?, name = ?, price = ?,
	      is_featured = ?, is_archived = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND store_id = ?
	`, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price, p.IsFeatured, p.IsArchived, id, p.StoreID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, tx.Commit()
	}

	if _, err := tx.Exec(`DELETE FROM product_images WHERE product_id = ?`, id); err != nil {
		return 0, err
	}
	if err := insertImages(tx, id, p.ImageURLs); err != nil {
		return 0, err
	}
	return n, tx.Commit()
}

func insertImages(tx *sqlx.Tx, productID string, urls []string) error {
	for _, u := range urls {
		if _, err := tx.Exec(`
		  INSERT INTO product_images(id, product_id, url) VALUES(?, ?, ?)
		`, uuid.NewString(), productID, u); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepo) Delete(id, storeID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
