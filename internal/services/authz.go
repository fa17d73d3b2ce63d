package services

import (
	"database/sql"
	"errors"

	"shopadmin/internal/domain"
	"shopadmin/internal/repos"
)

// ErrStoreNotFound covers both "no such store" and "store owned by someone
// else". The two are deliberately indistinguishable so a probing caller
// can't learn that another tenant's store id exists.
var ErrStoreNotFound = errors.New("store not found")

// OwnershipService is the guard every mutating handler runs before touching
// store-scoped data.
type OwnershipService struct {
	Stores *repos.StoreRepo
}

func NewOwnershipService(stores *repos.StoreRepo) *OwnershipService {
	return &OwnershipService{Stores: stores}
}

func (s *OwnershipService) AuthorizeStoreOwner(userID, storeID string) (domain.Store, error) {
	st, err := s.Stores.GetOwned(storeID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Store{}, ErrStoreNotFound
		}
		return domain.Store{}, err
	}
	return st, nil
}
