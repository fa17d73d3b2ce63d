package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ColorRepo struct{ db *sqlx.DB }

func NewColorRepo(db *sqlx.DB) *ColorRepo { return &ColorRepo{db: db} }

const colorCols = `id, store_id, name, value, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ColorRepo) ListByStore(storeID string) ([]domain.Color, error) {
	out := []domain.Color{}
	err := r.db.Select(&out, `
	  SELECT `+colorCols+` FROM colors
	  WHERE store_id = ?
	  ORDER BY created_at DESC
	`, storeID)
	return out, err
}

func (r *ColorRepo) Get(id string) (domain.Color, error) {
	var c domain.Color
	err := r.db.Get(&c, `SELECT `+colorCols+` FROM colors WHERE id = ?`, id)
	return c, err
}

func (r *ColorRepo) ExistsInStore(id, storeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM colors WHERE id = ? AND store_id = ?`, id, storeID)
	return n > 0, err
}

func (r *ColorRepo) Create(id, storeID, name, value string) (domain.Color, error) {
	_, err := r.db.Exec(`
	  INSERT INTO colors(id, store_id, name, value) VALUES(?, ?, ?, ?)
	`, id, storeID, name, value)
	if err != nil {
		return domain.Color{}, err
	}
	return r.Get(id)
}

func (r *ColorRepo) Update(id, storeID, name, value string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE colors SET name = ?, value = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND store_id = ?
	`, name, value, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ColorRepo) Delete(id, storeID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM colors WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
