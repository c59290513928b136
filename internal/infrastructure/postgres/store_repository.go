package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, owner_id, name, slug, description, phone, address, schedule, status, created_at, updated_at`

// Create persiste una tienda. Slug duplicado → ErrDuplicate.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (` + storeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OwnerID, s.Name, s.Slug, s.Description, s.Phone, s.Address, s.Schedule, s.Status,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda; nil, nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

// GetBySlug obtiene una tienda por su slug público.
func (r *StoreRepo) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE slug = $1`, slug)
}

// GetByOwnerID primera tienda creada por el usuario.
func (r *StoreRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE owner_id = $1 ORDER BY created_at LIMIT 1`, ownerID)
}

func (r *StoreRepo) getOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Description, &s.Phone, &s.Address, &s.Schedule, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update actualiza los datos editables de la tienda.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, description = $3, phone = $4, address = $5, schedule = $6, status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description, s.Phone, s.Address, s.Schedule, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
