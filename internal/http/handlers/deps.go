package handlers

import (
	"github.com/jmoiron/sqlx"

	"shopadmin/internal/repos"
	"shopadmin/internal/services"
)

type Deps struct {
	StoreHandler     *StoreHandler
	BillboardHandler *BillboardHandler
	CategoryHandler  *CategoryHandler
	SizeHandler      *SizeHandler
	ColorHandler     *ColorHandler
	ProductHandler   *ProductHandler
	OrderHandler     *OrderHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	storeRepo := repos.NewStoreRepo(db)
	billboardRepo := repos.NewBillboardRepo(db)
	categoryRepo := repos.NewCategoryRepo(db)
	sizeRepo := repos.NewSizeRepo(db)
	colorRepo := repos.NewColorRepo(db)
	productRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	owner := services.NewOwnershipService(storeRepo)

	return &Deps{
		StoreHandler:     &StoreHandler{Stores: storeRepo, Owner: owner},
		BillboardHandler: &BillboardHandler{Billboards: billboardRepo, Owner: owner},
		CategoryHandler:  &CategoryHandler{Categories: categoryRepo, Billboards: billboardRepo, Owner: owner},
		SizeHandler:      &SizeHandler{Sizes: sizeRepo, Owner: owner},
		ColorHandler:     &ColorHandler{Colors: colorRepo, Owner: owner},
		ProductHandler:   &ProductHandler{Products: productRepo, Categories: categoryRepo, Sizes: sizeRepo, Colors: colorRepo, Owner: owner},
		OrderHandler:     &OrderHandler{Orders: orderRepo, Owner: owner},
	}
}
