// Package catalog casos de uso de la tienda, su catálogo y el menú público.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// StoreUseCase lectura y edición de la tienda propia.
type StoreUseCase struct {
	stores   repository.StoreRepository
	validate *validation.Validator
	menuURL  MenuURLFunc
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.StoreRepository, v *validation.Validator, menuURL MenuURLFunc) *StoreUseCase {
	return &StoreUseCase{stores: stores, validate: v, menuURL: menuURL}
}

// Get devuelve la tienda.
func (uc *StoreUseCase) Get(ctx context.Context, storeID string) (*dto.StoreResponse, error) {
	s, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := ToStoreResponse(s, uc.menuURL)
	return &out, nil
}

// Update aplica los campos presentes. El slug no cambia: es la URL impresa en el QR.
func (uc *StoreUseCase) Update(ctx context.Context, storeID string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	s, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.Phone != nil {
		s.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		s.Address = strings.TrimSpace(*in.Address)
	}
	if in.Schedule != nil {
		s.Schedule = strings.TrimSpace(*in.Schedule)
	}
	s.UpdatedAt = time.Now()
	if err := uc.stores.Update(ctx, s); err != nil {
		return nil, err
	}
	out := ToStoreResponse(s, uc.menuURL)
	return &out, nil
}
