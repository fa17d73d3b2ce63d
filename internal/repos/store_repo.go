package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

const storeCols = `id, name, user_id, address, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *StoreRepo) Create(id, userID, name, address string) (domain.Store, error) {
	_, err := r.db.Exec(`
	  INSERT INTO stores(id, name, user_id, address) VALUES(?, ?, ?, ?)
	`, id, name, userID, address)
	if err != nil {
		return domain.Store{}, err
	}
	return r.Get(id)
}

func (r *StoreRepo) Get(id string) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `SELECT `+storeCols+` FROM stores WHERE id = ?`, id)
	return s, err
}

// GetOwned looks a store up by id AND owning user. Returns sql.ErrNoRows for
// both "absent" and "not yours"; callers must not tell the two apart.
func (r *StoreRepo) GetOwned(id, userID string) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `SELECT `+storeCols+` FROM stores WHERE id = ? AND user_id = ?`, id, userID)
	return s, err
}

func (r *StoreRepo) ListByUser(userID string) ([]domain.Store, error) {
	out := []domain.Store{}
	err := r.db.Select(&out, `
	  SELECT `+storeCols+` FROM stores WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	return out, err
}

// Update is scoped by (id, user_id); zero rows means absent or not owned.
func (r *StoreRepo) Update(id, userID, name, address string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE stores SET name = ?, address = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND user_id = ?
	`, name, address, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the store and everything scoped to it in one transaction.
// Line items and product images go via ON DELETE CASCADE.
func (r *StoreRepo) Delete(id, userID string) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var owned int
	if err := tx.Get(&owned, `SELECT COUNT(*) FROM stores WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return 0, err
	}
	if owned == 0 {
		return 0, tx.Commit()
	}

	// children first: stores are referenced with ON DELETE RESTRICT
	for _, q := range []string{
		`DELETE FROM orders     WHERE store_id = ?`,
		`DELETE FROM products   WHERE store_id = ?`,
		`DELETE FROM categories WHERE store_id = ?`,
		`DELETE FROM sizes      WHERE store_id = ?`,
		`DELETE FROM colors     WHERE store_id = ?`,
		`DELETE FROM billboards WHERE store_id = ?`,
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return 0, err
		}
	}
	res, err := tx.Exec(`DELETE FROM stores WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}
