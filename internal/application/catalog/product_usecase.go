package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase ABM de productos y categorías de una tienda.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	validate   *validation.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, v *validation.Validator) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, validate: v}
}

// CreateCategory crea una categoría.
func (uc *ProductUseCase) CreateCategory(ctx context.Context, storeID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Name:      in.Name,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.FieldError("name", "Ya existe una categoría con ese nombre")
		}
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// ListCategories categorías en orden de menú.
func (uc *ProductUseCase) ListCategories(ctx context.Context, storeID string) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// DeleteCategory borra una categoría.
func (uc *ProductUseCase) DeleteCategory(ctx context.Context, storeID, id string) error {
	return uc.categories.Delete(ctx, storeID, id)
}

// Create crea un producto. Disponible por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, storeID, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.NewString(),
		StoreID:     storeID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Variants:    toEntityVariants(in.Variants),
		Available:   in.Available == nil || *in.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Get devuelve un producto.
func (uc *ProductUseCase) Get(ctx context.Context, storeID, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// List todos los productos de la tienda (incluye los no disponibles).
func (uc *ProductUseCase) List(ctx context.Context, storeID string) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListByStore(ctx, storeID, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update aplica los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, storeID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, storeID, *in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.FieldError("name", "Este campo es obligatorio")
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Variants != nil {
		p.Variants = toEntityVariants(*in.Variants)
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete elimina un producto. Las ventas existentes no se ven afectadas.
func (uc *ProductUseCase) Delete(ctx context.Context, storeID, id string) error {
	return uc.products.Delete(ctx, storeID, id)
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, storeID, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	c, err := uc.categories.GetByID(ctx, storeID, categoryID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.FieldError("category_id", "La categoría no existe")
	}
	return nil
}

func toEntityVariants(in []dto.ProductVariantDTO) []entity.ProductVariant {
	out := make([]entity.ProductVariant, 0, len(in))
	for _, v := range in {
		id := v.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, entity.ProductVariant{ID: id, Name: strings.TrimSpace(v.Name), Price: v.Price})
	}
	return out
}
