package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListAll todos los usuarios, ordenados por fecha de alta (backfill de claims).
	ListAll(ctx context.Context) ([]*entity.User, error)

	// UpdateClaims asigna tienda y rol a un usuario.
	UpdateClaims(ctx context.Context, userID, storeID, role string) error
}
