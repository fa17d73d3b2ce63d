package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BillboardRepo struct{ db *sqlx.DB }

func NewBillboardRepo(db *sqlx.DB) *BillboardRepo { return &BillboardRepo{db: db} }

const billboardCols = `id, store_id, label, image_url, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *BillboardRepo) ListByStore(storeID string) ([]domain.Billboard, error) {
	out := []domain.Billboard{}
	err := r.db.Select(&out, `
	  SELECT `+billboardCols+` FROM billboards
	  WHERE store_id = ?
	  ORDER BY created_at DESC
	`, storeID)
	return out, err
}

func (r *BillboardRepo) Get(id string) (domain.Billboard, error) {
	var b domain.Billboard
	err := r.db.Get(&b, `SELECT `+billboardCols+` FROM billboards WHERE id = ?`, id)
	return b, err
}

// ExistsInStore is the cross-store reference check used by category writes.
func (r *BillboardRepo) ExistsInStore(id, storeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM billboards WHERE id = ? AND store_id = ?`, id, storeID)
	return n > 0, err
}

func (r *BillboardRepo) Create(id, storeID, label, imageURL string) (domain.Billboard, error) {
	_, err := r.db.Exec(`
	  INSERT INTO billboards(id, store_id, label, image_url) VALUES(?, ?, ?, ?)
	`, id, storeID, label, imageURL)
	if err != nil {
		return domain.Billboard{}, err
	}
	return r.Get(id)
}

func (r *BillboardRepo) Update(id, storeID, label, imageURL string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE billboards SET label = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND store_id = ?
	`, label, imageURL, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *BillboardRepo) Delete(id, storeID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM billboards WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
