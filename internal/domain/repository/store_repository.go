package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
}
