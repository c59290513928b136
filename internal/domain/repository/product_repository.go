package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, storeID, id string) error
	// ListByStore con onlyAvailable=true omite los productos pausados (menú público).
	ListByStore(ctx context.Context, storeID string, onlyAvailable bool) ([]*entity.Product, error)
}
