package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Category, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.Category, error)
	Delete(ctx context.Context, storeID, id string) error
}
