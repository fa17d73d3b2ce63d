package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `id, store_id, billboard_id, name, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *CategoryRepo) ListByStore(storeID string) ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `
	  SELECT `+categoryCols+` FROM categories
	  WHERE store_id = ?
	  ORDER BY created_at DESC
	`, storeID)
	return out, err
}

// Get returns the category with its billboard attached.
func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	if err := r.db.Get(&c, `SELECT `+categoryCols+` FROM categories WHERE id = ?`, id); err != nil {
		return domain.Category{}, err
	}
	var b domain.Billboard
	if err := r.db.Get(&b, `SELECT `+billboardCols+` FROM billboards WHERE id = ?`, c.BillboardID); err == nil {
		c.Billboard = &b
	}
	return c, nil
}

func (r *CategoryRepo) ExistsInStore(id, storeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM categories WHERE id = ? AND store_id = ?`, id, storeID)
	return n > 0, err
}

func (r *CategoryRepo) Create(id, storeID, billboardID, name string) (domain.Category, error) {
	_, err := r.db.Exec(`
	  INSERT INTO categories(id, store_id, billboard_id, name) VALUES(?, ?, ?, ?)
	`, id, storeID, billboardID, name)
	if err != nil {
		return domain.Category{}, err
	}
	return r.Get(id)
}

func (r *CategoryRepo) Update(id, storeID, billboardID, name string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE categories SET billboard_id = ?, name = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND store_id = ?
	`, billboardID, name, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CategoryRepo) Delete(id, storeID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
