package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// uncategorizedName título de la sección para productos sin categoría.
const uncategorizedName = "Otros"

// MenuUseCase menú público y tarjeta QR imprimible.
type MenuUseCase struct {
	stores     repository.StoreRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cards      MenuCardGenerator
	menuURL    MenuURLFunc
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	cards MenuCardGenerator,
	menuURL MenuURLFunc,
) *MenuUseCase {
	return &MenuUseCase{stores: stores, products: products, categories: categories, cards: cards, menuURL: menuURL}
}

// PublicMenu productos disponibles agrupados por categoría, en el orden del
// menú. Las categorías vacías se omiten; los productos sin categoría van al final.
func (uc *MenuUseCase) PublicMenu(ctx context.Context, slug string) (*dto.PublicMenuResponse, error) {
	store, err := uc.stores.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if store == nil || store.Status != entity.StoreStatusActive {
		return nil, domain.ErrNotFound
	}
	cats, err := uc.categories.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByStore(ctx, store.ID, true)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.ProductResponse)
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], toProductResponse(p))
	}

	sections := make([]dto.MenuCategoryDTO, 0, len(cats)+1)
	for _, c := range cats {
		if ps := byCategory[c.ID]; len(ps) > 0 {
			sections = append(sections, dto.MenuCategoryDTO{ID: c.ID, Name: c.Name, Products: ps})
			delete(byCategory, c.ID)
		}
	}
	// Productos sin categoría o con una categoría que ya no existe.
	var rest []dto.ProductResponse
	for _, p := range products {
		if _, ok := byCategory[p.CategoryID]; ok {
			rest = append(rest, toProductResponse(p))
		}
	}
	if len(rest) > 0 {
		sections = append(sections, dto.MenuCategoryDTO{Name: uncategorizedName, Products: rest})
	}

	return &dto.PublicMenuResponse{
		Store: dto.PublicStoreDTO{
			Name:        store.Name,
			Slug:        store.Slug,
			Description: store.Description,
			Phone:       store.Phone,
			Address:     store.Address,
			Schedule:    store.Schedule,
		},
		Categories: sections,
	}, nil
}

// DownloadMenuCard genera el PDF de la tarjeta QR. Devuelve el contenido y el
// nombre de archivo sugerido.
func (uc *MenuUseCase) DownloadMenuCard(ctx context.Context, storeID string) ([]byte, string, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, "", err
	}
	if store == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.cards.GenerateMenuCard(ctx, MenuCard{
		StoreName:   store.Name,
		Description: store.Description,
		Phone:       store.Phone,
		Address:     store.Address,
		Schedule:    store.Schedule,
		MenuURL:     uc.menuURL(store.Slug),
	})
	if err != nil {
		return nil, "", fmt.Errorf("generar tarjeta: %w", err)
	}
	return pdf, "menu_" + store.Slug + ".pdf", nil
}
