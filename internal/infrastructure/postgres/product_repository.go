package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, store_id, COALESCE(category_id::text, ''), name, description, price, variants, available, created_at, updated_at`

type productVariantJSON struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func encodeVariants(vs []entity.ProductVariant) ([]byte, error) {
	out := make([]productVariantJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, productVariantJSON{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	return json.Marshal(out)
}

func decodeVariants(raw []byte) ([]entity.ProductVariant, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var in []productVariantJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	out := make([]entity.ProductVariant, 0, len(in))
	for _, v := range in {
		out = append(out, entity.ProductVariant{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	return out, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	variants, err := encodeVariants(p.Variants)
	if err != nil {
		return fmt.Errorf("codificar variantes: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO products (id, store_id, category_id, name, description, price, variants, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.StoreID, nullIfEmpty(p.CategoryID), p.Name, p.Description, p.Price, variants, p.Available,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.FieldError("category_id", "La categoría no existe")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto de la tienda; nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE store_id = $1 AND id = $2`, storeID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	variants, err := encodeVariants(p.Variants)
	if err != nil {
		return fmt.Errorf("codificar variantes: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET category_id = $3, name = $4, description = $5, price = $6, variants = $7,
			available = $8, updated_at = $9
		WHERE store_id = $1 AND id = $2`,
		p.StoreID, p.ID, nullIfEmpty(p.CategoryID), p.Name, p.Description, p.Price, variants, p.Available, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.FieldError("category_id", "La categoría no existe")
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Las ventas guardan su propia copia de nombre y precio.
func (r *ProductRepo) Delete(ctx context.Context, storeID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE store_id = $1 AND id = $2`, storeID, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByStore lista productos por nombre.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string, onlyAvailable bool) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1`
	if onlyAvailable {
		query += ` AND available`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p   entity.Product
		raw []byte
	)
	if err := row.Scan(&p.ID, &p.StoreID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &raw, &p.Available, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	vs, err := decodeVariants(raw)
	if err != nil {
		return nil, fmt.Errorf("decodificar variantes: %w", err)
	}
	p.Variants = vs
	return &p, nil
}
