// Package sales casos de uso del circuito de ventas: alta, edición, baja,
// consulta con filtros/estadísticas y exportación.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	dsales "github.com/jhoicas/tienda-api/internal/domain/sales"
)

const dateLayout = "2006-01-02"

// Config parámetros del caso de uso.
type Config struct {
	Location     *time.Location // zona de la tienda: fechas de filtros y "hoy"
	ListLimit    int            // límite por defecto de la consulta a persistencia
	MaxListLimit int
}

// SaleUseCase orquesta validación, cálculo y persistencia de ventas.
type SaleUseCase struct {
	repo     repository.SaleRepository
	validate *validation.Validator
	cfg      Config
	now      func() time.Time
	newID    func() string
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, v *validation.Validator, cfg Config) *SaleUseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 500
	}
	if cfg.MaxListLimit < cfg.ListLimit {
		cfg.MaxListLimit = cfg.ListLimit
	}
	return &SaleUseCase{
		repo:     repo,
		validate: v,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// Create valida la entrada, calcula los montos en el servidor y persiste.
func (uc *SaleUseCase) Create(ctx context.Context, storeID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.prepare(storeID, in)
	if err != nil {
		return nil, err
	}
	sale.ID = uc.newID()
	sale.OrderNumber = fmt.Sprintf("VTA-%d", uc.now().UnixMilli())

	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	out := ToSaleResponse(sale)
	return &out, nil
}

// Update aplica el parche sobre la venta almacenada, revalida la venta
// resultante completa y recalcula totales antes de persistir.
func (uc *SaleUseCase) Update(ctx context.Context, storeID, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	current, err := uc.repo.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	merged := applyPatch(requestFromSale(current), in)
	sale, err := uc.prepare(storeID, merged)
	if err != nil {
		return nil, err
	}
	sale.ID = current.ID
	sale.OrderNumber = current.OrderNumber
	sale.Metadata.CreatedAt = current.Metadata.CreatedAt

	if err := uc.repo.Update(ctx, sale, in.ExpectedUpdatedAt); err != nil {
		return nil, fmt.Errorf("actualizar venta: %w", err)
	}
	out := ToSaleResponse(sale)
	return &out, nil
}

// Delete borra la venta (borrado físico).
func (uc *SaleUseCase) Delete(ctx context.Context, storeID, id string) error {
	if err := uc.repo.Delete(ctx, storeID, id); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	return nil
}

// Get devuelve una venta de la tienda.
func (uc *SaleUseCase) Get(ctx context.Context, storeID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	out := ToSaleResponse(sale)
	return &out, nil
}

// List consulta la persistencia con los filtros indexables, aplica en memoria
// la búsqueda por cliente y el orden, y recalcula las estadísticas sobre el
// conjunto resultante.
func (uc *SaleUseCase) List(ctx context.Context, storeID string, in dto.SaleListRequest) (*dto.SaleListResponse, error) {
	list, criteria, err := uc.query(ctx, storeID, in, uc.cfg.ListLimit)
	if err != nil {
		return nil, err
	}
	stats := dsales.ComputeStats(list, uc.now().In(uc.cfg.Location))

	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items:    items,
		Stats:    toStatsResponse(stats),
		Criteria: criteria,
	}, nil
}

// query ejecuta el circuito consulta → filtro → orden. Devuelve además los
// criterios normalizados.
func (uc *SaleUseCase) query(ctx context.Context, storeID string, in dto.SaleListRequest, defaultLimit int) ([]*entity.Sale, dto.SaleListRequest, error) {
	criteria, limit, err := uc.parseCriteria(in, defaultLimit)
	if err != nil {
		return nil, in, err
	}
	from, to := criteria.Bounds()
	q := repository.SaleQuery{
		StoreID: storeID,
		From:    from,
		To:      to,
		Limit:   limit,
	}
	if criteria.PaymentMethod != dsales.AllValues {
		q.PaymentMethod = entity.PaymentMethod(criteria.PaymentMethod)
	}
	if criteria.DeliveryMethod != dsales.AllValues {
		q.DeliveryMethod = entity.DeliveryMethod(criteria.DeliveryMethod)
	}
	if criteria.Source != dsales.AllValues {
		q.Source = entity.SaleSource(criteria.Source)
	}

	rows, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, in, fmt.Errorf("listar ventas: %w", err)
	}
	list := dsales.Filter(rows, criteria)
	dsales.Sort(list, criteria.SortBy)

	norm := dto.SaleListRequest{
		Customer:       criteria.CustomerSearch,
		StartDate:      strings.TrimSpace(in.StartDate),
		EndDate:        strings.TrimSpace(in.EndDate),
		PaymentMethod:  criteria.PaymentMethod,
		DeliveryMethod: criteria.DeliveryMethod,
		Source:         criteria.Source,
		SortBy:         string(criteria.SortBy),
		Limit:          limit,
	}
	return list, norm, nil
}

// parseCriteria traduce el query string a criterios de dominio. Las fechas
// se interpretan en la zona de la tienda; un sort_by desconocido cae en
// date-desc.
func (uc *SaleUseCase) parseCriteria(in dto.SaleListRequest, defaultLimit int) (dsales.Criteria, int, error) {
	c := dsales.DefaultCriteria()
	verr := domain.NewValidationError()

	c.CustomerSearch = strings.TrimSpace(in.Customer)

	if s := strings.TrimSpace(in.StartDate); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, uc.cfg.Location)
		if err != nil {
			verr.Add("start_date", "Fecha inválida, use AAAA-MM-DD")
		} else {
			c.StartDate = &t
		}
	}
	if s := strings.TrimSpace(in.EndDate); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, uc.cfg.Location)
		if err != nil {
			verr.Add("end_date", "Fecha inválida, use AAAA-MM-DD")
		} else {
			c.EndDate = &t
		}
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		verr.Add("end_date", "La fecha final no puede ser anterior a la inicial")
	}

	c.PaymentMethod = enumOrAll(in.PaymentMethod, func(v string) bool { return entity.PaymentMethod(v).Valid() }, "payment_method", verr)
	c.DeliveryMethod = enumOrAll(in.DeliveryMethod, func(v string) bool { return entity.DeliveryMethod(v).Valid() }, "delivery_method", verr)
	c.Source = enumOrAll(in.Source, func(v string) bool { return entity.SaleSource(v).Valid() }, "source", verr)

	c.SortBy, _ = dsales.ParseSortKey(strings.TrimSpace(in.SortBy))

	limit := in.Limit
	switch {
	case limit < 0:
		verr.Add("limit", "Debe ser mayor o igual a 0")
	case limit == 0:
		limit = defaultLimit
	case limit > uc.cfg.MaxListLimit:
		limit = uc.cfg.MaxListLimit
	}

	if verr.HasErrors() {
		return c, 0, verr
	}
	return c, limit, nil
}

func enumOrAll(v string, valid func(string) bool, field string, verr *domain.ValidationError) string {
	v = strings.TrimSpace(v)
	if v == "" || v == dsales.AllValues {
		return dsales.AllValues
	}
	if !valid(v) {
		verr.Add(field, "Valor inválido")
		return dsales.AllValues
	}
	return v
}

// prepare valida la entrada y construye la venta con montos recalculados.
func (uc *SaleUseCase) prepare(storeID string, in dto.CreateSaleRequest) (*entity.Sale, error) {
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Delivery.Address = strings.TrimSpace(in.Delivery.Address)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	sale := buildSale(storeID, in, uc.newID)
	if sale.Totals.Total.IsNegative() {
		return nil, domain.FieldError("discount", "El descuento no puede superar el subtotal")
	}
	return sale, nil
}
