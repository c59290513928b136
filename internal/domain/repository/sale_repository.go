package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SaleQuery criterios que la persistencia resuelve por índice. La búsqueda
// por nombre de cliente NO forma parte: se aplica en memoria sobre el resultado.
type SaleQuery struct {
	StoreID        string
	From           *time.Time            // created_at >= From
	To             *time.Time            // created_at <= To
	PaymentMethod  entity.PaymentMethod  // vacío = todos
	DeliveryMethod entity.DeliveryMethod // vacío = todos
	Source         entity.SaleSource     // vacío = todos
	Limit          int
}

// SaleRepository define el puerto de persistencia para ventas (DIP).
// Toda operación está acotada a una tienda.
type SaleRepository interface {
	// Create persiste la venta; Metadata.CreatedAt/UpdatedAt los fija el servidor.
	Create(ctx context.Context, sale *entity.Sale) error

	// Update reemplaza el documento. Con expectedUpdatedAt != nil la escritura
	// sólo procede si coincide con el valor almacenado (domain.ErrConflict si no).
	// Sin precondición gana la última escritura.
	Update(ctx context.Context, sale *entity.Sale, expectedUpdatedAt *time.Time) error

	// Delete borra físicamente. domain.ErrNotFound si no existe en la tienda.
	Delete(ctx context.Context, storeID, id string) error

	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, storeID, id string) (*entity.Sale, error)

	// List devuelve las ventas ordenadas por created_at descendente.
	List(ctx context.Context, q SaleQuery) ([]*entity.Sale, error)
}
