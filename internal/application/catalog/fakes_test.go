package catalog_test

import (
	"context"
	"slices"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (orden de inserción preservado)
// ──────────────────────────────────────────────────────────────────────────────

type fakeStores struct{ list []*entity.Store }

func (f *fakeStores) Create(_ context.Context, s *entity.Store) error {
	f.list = append(f.list, s)
	return nil
}

func (f *fakeStores) GetByID(_ context.Context, id string) (*entity.Store, error) {
	for _, s := range f.list {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStores) GetBySlug(_ context.Context, slug string) (*entity.Store, error) {
	for _, s := range f.list {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStores) GetByOwnerID(context.Context, string) (*entity.Store, error) { return nil, nil }

func (f *fakeStores) Update(context.Context, *entity.Store) error { return nil }

type fakeCategories struct{ list []*entity.Category }

func (f *fakeCategories) Create(_ context.Context, c *entity.Category) error {
	for _, e := range f.list {
		if e.StoreID == c.StoreID && e.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	f.list = append(f.list, c)
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, storeID, id string) (*entity.Category, error) {
	for _, c := range f.list {
		if c.StoreID == storeID && c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) ListByStore(_ context.Context, storeID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.list {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Category) int { return a.Position - b.Position })
	return out, nil
}

func (f *fakeCategories) Delete(_ context.Context, storeID, id string) error {
	for i, c := range f.list {
		if c.StoreID == storeID && c.ID == id {
			f.list = slices.Delete(f.list, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeProducts struct{ list []*entity.Product }

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.list = append(f.list, p)
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, storeID, id string) (*entity.Product, error) {
	for _, p := range f.list {
		if p.StoreID == storeID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Update(context.Context, *entity.Product) error { return nil }

func (f *fakeProducts) Delete(_ context.Context, storeID, id string) error {
	for i, p := range f.list {
		if p.StoreID == storeID && p.ID == id {
			f.list = slices.Delete(f.list, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProducts) ListByStore(_ context.Context, storeID string, onlyAvailable bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.list {
		if p.StoreID == storeID && (!onlyAvailable || p.Available) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCards struct{ got catalog.MenuCard }

func (f *fakeCards) GenerateMenuCard(_ context.Context, card catalog.MenuCard) ([]byte, error) {
	f.got = card
	return []byte("%PDF-fake"), nil
}

func menuURL(slug string) string { return "https://menu.test/" + slug }
