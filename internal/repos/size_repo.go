package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SizeRepo struct{ db *sqlx.DB }

func NewSizeRepo(db *sqlx.DB) *SizeRepo { return &SizeRepo{db: db} }

const sizeCols = `id, store_id, name, value, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *SizeRepo) ListByStore(storeID string) ([]domain.Size, error) {
	out := []domain.Size{}
	err := r.db.Select(&out, `
	  SELECT `+sizeCols+` FROM sizes
	  WHERE store_id = ?
	  ORDER BY created_at DESC
	`, storeID)
	return out, err
}

func (r *SizeRepo) Get(id string) (domain.Size, error) {
	var s domain.Size
	err := r.db.Get(&s, `SELECT `+sizeCols+` FROM sizes WHERE id = ?`, id)
	return s, err
}

func (r *SizeRepo) ExistsInStore(id, storeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM sizes WHERE id = ? AND store_id = ?`, id, storeID)
	return n > 0, err
}

func (r *SizeRepo) Create(id, storeID, name, value string) (domain.Size, error) {
	_, err := r.db.Exec(`
	  INSERT INTO sizes(id, store_id, name, value) VALUES(?, ?, ?, ?)
	`, id, storeID, name, value)
	if err != nil {
		return domain.Size{}, err
	}
	return r.Get(id)
}

func (r *SizeRepo) Update(id, storeID, name, value string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE sizes SET name = ?, value = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND store_id = ?
	`, name, value, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SizeRepo) Delete(id, storeID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM sizes WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
