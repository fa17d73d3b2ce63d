package domain

import "github.com/shopspring/decimal"

type Store struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	UserID    string `db:"user_id" json:"userId"`
	Address   string `db:"address" json:"address"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Billboard struct {
	ID        string `db:"id" json:"id"`
	StoreID   string `db:"store_id" json:"storeId"`
	Label     string `db:"label" json:"label"`
	ImageURL  string `db:"image_url" json:"imageUrl"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Category struct {
	ID          string     `db:"id" json:"id"`
	StoreID     string     `db:"store_id" json:"storeId"`
	BillboardID string     `db:"billboard_id" json:"billboardId"`
	Name        string     `db:"name" json:"name"`
	CreatedAt   string     `db:"created_at" json:"createdAt"`
	UpdatedAt   string     `db:"updated_at" json:"updatedAt,omitempty"`
	Billboard   *Billboard `db:"-" json:"billboard,omitempty"`
}

// Size and Color share the name/value shape; a Color value is a hex string.
type Size struct {
	ID        string `db:"id" json:"id"`
	StoreID   string `db:"store_id" json:"storeId"`
	Name      string `db:"name" json:"name"`
	Value     string `db:"value" json:"value"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Color struct {
	ID        string `db:"id" json:"id"`
	StoreID   string `db:"store_id" json:"storeId"`
	Name      string `db:"name" json:"name"`
	Value     string `db:"value" json:"value"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Product struct {
	ID         string          `db:"id" json:"id"`
	StoreID    string          `db:"store_id" json:"storeId"`
	CategoryID string          `db:"category_id" json:"categoryId"`
	SizeID     string          `db:"size_id" json:"sizeId"`
	ColorID    string          `db:"color_id" json:"colorId"`
	Name       string          `db:"name" json:"name"`
	Price      decimal.Decimal `db:"price" json:"price"`
	IsFeatured bool            `db:"is_featured" json:"isFeatured"`
	IsArchived bool            `db:"is_archived" json:"isArchived"`
	CreatedAt  string          `db:"created_at" json:"createdAt"`
	UpdatedAt  string          `db:"updated_at" json:"updatedAt,omitempty"`

	Images   []Image   `db:"-" json:"images,omitempty"`
	Category *Category `db:"-" json:"category,omitempty"`
	Size     *Size     `db:"-" json:"size,omitempty"`
	Color    *Color    `db:"-" json:"color,omitempty"`
}

type Image struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"productId"`
	URL       string `db:"url" json:"url"`
}

type Order struct {
	ID        string `db:"id" json:"id"`
	StoreID   string `db:"store_id" json:"storeId"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
	IsPaid    bool   `db:"is_paid" json:"isPaid"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`

	Items []OrderItem `db:"-" json:"orderItems,omitempty"`
}

type OrderItem struct {
	ID        string `db:"id" json:"id"`
	OrderID   string `db:"order_id" json:"orderId"`
	ProductID string `db:"product_id" json:"productId"`
}
