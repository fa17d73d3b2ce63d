package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

// OrderRepo reads orders written by the storefront checkout; the dashboard
// never mutates them.
type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, store_id, phone, address, is_paid, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *OrderRepo) ListByStore(storeID string) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT `+orderCols+` FROM orders
	  WHERE store_id = ?
	  ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInStore scopes the lookup to the store so an order id from another
// tenant reads as absent.
func (r *OrderRepo) GetInStore(id, storeID string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return domain.Order{}, err
	}
	one := []domain.Order{o}
	if err := r.attachItems(one); err != nil {
		return domain.Order{}, err
	}
	return one[0], nil
}

func (r *OrderRepo) attachItems(orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	query, args, err := sqlx.In(`SELECT id, order_id, product_id FROM order_items WHERE order_id IN (?)`, ids)
	if err != nil {
		return err
	}
	var items []domain.OrderItem
	if err := r.db.Select(&items, query, args...); err != nil {
		return err
	}
	byOrder := map[string][]domain.OrderItem{}
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return nil
}
