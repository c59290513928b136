package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL. Cada
// venta es una fila con columnas indexables y el documento JSONB versionado.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta. created_at/updated_at los fija la base (now()).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	doc, err := encodeSaleDocument(sale)
	if err != nil {
		return fmt.Errorf("codificar venta: %w", err)
	}
	query := `
		INSERT INTO sales (id, store_id, order_number, source, payment_method, delivery_method,
			customer_name, total, schema_version, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING created_at, updated_at`
	err = r.q.QueryRow(ctx, query,
		sale.ID, sale.StoreID, sale.OrderNumber, string(sale.Source), string(sale.Payment.Method),
		string(sale.Delivery.Method), sale.Customer.Name, sale.Totals.Total, saleDocCurrent, doc,
	).Scan(&sale.Metadata.CreatedAt, &sale.Metadata.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Update reemplaza el documento y las columnas derivadas. Con precondición,
// la fila sólo se actualiza si updated_at coincide; si no hay fila afectada se
// distingue entre inexistente (ErrNotFound) y modificada (ErrConflict).
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale, expectedUpdatedAt *time.Time) error {
	doc, err := encodeSaleDocument(sale)
	if err != nil {
		return fmt.Errorf("codificar venta: %w", err)
	}
	query := `
		UPDATE sales SET source = $3, payment_method = $4, delivery_method = $5, customer_name = $6,
			total = $7, schema_version = $8, doc = $9, updated_at = now()
		WHERE store_id = $1 AND id = $2 AND ($10::timestamptz IS NULL OR updated_at = $10)
		RETURNING created_at, updated_at`
	err = r.q.QueryRow(ctx, query,
		sale.StoreID, sale.ID, string(sale.Source), string(sale.Payment.Method), string(sale.Delivery.Method),
		sale.Customer.Name, sale.Totals.Total, saleDocCurrent, doc, expectedUpdatedAt,
	).Scan(&sale.Metadata.CreatedAt, &sale.Metadata.UpdatedAt)
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if expectedUpdatedAt == nil {
			return domain.ErrNotFound
		}
		current, getErr := r.GetByID(ctx, sale.StoreID, sale.ID)
		if getErr != nil {
			return getErr
		}
		if current == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	if isInvalidID(err) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("update sale: %w", err)
}

// Delete borra físicamente la venta de la tienda.
func (r *SaleRepo) Delete(ctx context.Context, storeID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE store_id = $1 AND id = $2`, storeID, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una venta de la tienda; nil, nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE store_id = $1 AND id = $2`
	s, err := scanSale(r.q.QueryRow(ctx, query, storeID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List ejecuta la consulta construida por buildSaleListQuery.
func (r *SaleRepo) List(ctx context.Context, q repository.SaleQuery) ([]*entity.Sale, error) {
	query, args := buildSaleListQuery(q)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		id, storeID          string
		version              int
		doc                  []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &storeID, &version, &doc, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s, err := decodeSaleDocument(version, doc)
	if err != nil {
		return nil, err
	}
	s.ID = id
	s.StoreID = storeID
	s.Metadata = entity.SaleMetadata{CreatedAt: createdAt, UpdatedAt: updatedAt}
	return s, nil
}
