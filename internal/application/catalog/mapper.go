package catalog

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ToStoreResponse convierte la tienda a DTO incluyendo la URL del menú.
func ToStoreResponse(s *entity.Store, menuURL MenuURLFunc) dto.StoreResponse {
	return dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Phone:       s.Phone,
		Address:     s.Address,
		Schedule:    s.Schedule,
		Status:      s.Status,
		MenuURL:     menuURL(s.Slug),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	vs := make([]dto.ProductVariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		vs = append(vs, dto.ProductVariantDTO{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	return dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Variants:    vs,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Position: c.Position, CreatedAt: c.CreatedAt}
}
