package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/sales"
)

func ptr(t time.Time) *time.Time { return &t }

// ──────────────────────────────────────────────────────────────────────────────
// Rango de fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_RangoDelMismoDiaIncluyeVenta(t *testing.T) {
	s := newSale("1", "Ana", at(2024, time.March, 15, 14, 30), "10", 1)
	day := at(2024, time.March, 15, 0, 0)

	c := sales.DefaultCriteria()
	c.StartDate = ptr(day)
	c.EndDate = ptr(day)

	got := sales.Filter([]*entity.Sale{s}, c)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_FechaFinAnteriorExcluye(t *testing.T) {
	s := newSale("1", "Ana", at(2024, time.March, 15, 14, 30), "10", 1)

	c := sales.DefaultCriteria()
	c.StartDate = ptr(at(2024, time.March, 1, 0, 0))
	c.EndDate = ptr(at(2024, time.March, 14, 0, 0))

	assert.Empty(t, sales.Filter([]*entity.Sale{s}, c))
}

func TestFilter_FinDelDiaInclusivo(t *testing.T) {
	s := newSale("1", "Ana", time.Date(2024, 3, 15, 23, 59, 59, 999999999, testZone), "10", 1)

	c := sales.DefaultCriteria()
	c.EndDate = ptr(at(2024, time.March, 15, 9, 0))

	assert.Len(t, sales.Filter([]*entity.Sale{s}, c), 1)
}

func TestFilter_SoloFechaInicio(t *testing.T) {
	list := []*entity.Sale{
		newSale("1", "Ana", at(2024, time.March, 14, 23, 0), "10", 1),
		newSale("2", "Beto", at(2024, time.March, 15, 0, 0), "10", 1),
	}
	c := sales.DefaultCriteria()
	c.StartDate = ptr(at(2024, time.March, 15, 18, 0))

	assert.Equal(t, []string{"2"}, ids(sales.Filter(list, c)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_BusquedaClienteSinMayusculas(t *testing.T) {
	list := []*entity.Sale{
		newSale("1", "María García", at(2024, time.March, 15, 10, 0), "10", 1),
		newSale("2", "Pedro López", at(2024, time.March, 15, 11, 0), "10", 1),
	}

	for _, q := range []string{"garcía", "GARCÍA", "  garc  "} {
		c := sales.DefaultCriteria()
		c.CustomerSearch = q
		assert.Equal(t, []string{"1"}, ids(sales.Filter(list, c)), "búsqueda %q", q)
	}
}

func TestFilter_BusquedaDistingueAcentos(t *testing.T) {
	list := []*entity.Sale{newSale("1", "María García", at(2024, time.March, 15, 10, 0), "10", 1)}
	c := sales.DefaultCriteria()
	c.CustomerSearch = "garcia"

	assert.Empty(t, sales.Filter(list, c))
}

func TestFilter_BusquedaIgnoraFormaDeNormalizacion(t *testing.T) {
	// "1" guardado en NFC, "2" con acentos combinantes (NFD).
	list := []*entity.Sale{
		newSale("1", "María García", at(2024, time.March, 15, 10, 0), "10", 1),
		newSale("2", "Rau\u0301l Gari\u0301", at(2024, time.March, 15, 11, 0), "10", 1),
	}

	c := sales.DefaultCriteria()
	c.CustomerSearch = "garci\u0301a" // NFD
	assert.Equal(t, []string{"1"}, ids(sales.Filter(list, c)))

	c.CustomerSearch = "raúl garí" // NFC
	assert.Equal(t, []string{"2"}, ids(sales.Filter(list, c)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Enumerados y combinación
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_EnumeradosYCentinelaAll(t *testing.T) {
	a := newSale("1", "Ana", at(2024, time.March, 15, 10, 0), "10", 1)
	b := newSale("2", "Beto", at(2024, time.March, 15, 11, 0), "10", 1)
	b.Payment.Method = entity.PaymentMercadoPago
	b.Delivery = entity.SaleDelivery{Method: entity.DeliveryShipping, Address: "Calle 1"}
	b.Source = entity.SaleSourceWhatsApp
	list := []*entity.Sale{a, b}

	c := sales.DefaultCriteria()
	assert.Equal(t, []string{"1", "2"}, ids(sales.Filter(list, c)))

	c.PaymentMethod = string(entity.PaymentMercadoPago)
	assert.Equal(t, []string{"2"}, ids(sales.Filter(list, c)))

	c = sales.DefaultCriteria()
	c.DeliveryMethod = string(entity.DeliveryPickup)
	assert.Equal(t, []string{"1"}, ids(sales.Filter(list, c)))

	c = sales.DefaultCriteria()
	c.Source = string(entity.SaleSourceWhatsApp)
	c.PaymentMethod = string(entity.PaymentCash)
	assert.Empty(t, sales.Filter(list, c), "los predicados se combinan con AND")
}

func TestFilter_Idempotente(t *testing.T) {
	list := []*entity.Sale{
		newSale("1", "Ana García", at(2024, time.March, 10, 10, 0), "10", 1),
		newSale("2", "Beto", at(2024, time.March, 15, 11, 0), "10", 1),
		newSale("3", "Carla García", at(2024, time.March, 20, 11, 0), "10", 1),
	}
	c := sales.DefaultCriteria()
	c.CustomerSearch = "garcía"
	c.StartDate = ptr(at(2024, time.March, 1, 0, 0))
	c.EndDate = ptr(at(2024, time.March, 31, 0, 0))

	once := sales.Filter(list, c)
	twice := sales.Filter(once, c)
	assert.Equal(t, ids(once), ids(twice))
}

func TestFilter_NoModificaEntrada(t *testing.T) {
	list := []*entity.Sale{
		newSale("1", "Ana", at(2024, time.March, 10, 10, 0), "10", 1),
		newSale("2", "Beto", at(2024, time.March, 15, 11, 0), "10", 1),
	}
	c := sales.DefaultCriteria()
	c.CustomerSearch = "beto"

	got := sales.Filter(list, c)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"1", "2"}, ids(list))
}

func TestFilter_EntradaVaciaDevuelveSliceNoNil(t *testing.T) {
	got := sales.Filter(nil, sales.DefaultCriteria())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCriteriaBounds(t *testing.T) {
	c := sales.DefaultCriteria()
	from, to := c.Bounds()
	assert.Nil(t, from)
	assert.Nil(t, to)

	c.StartDate = ptr(at(2024, time.March, 15, 13, 0))
	c.EndDate = ptr(at(2024, time.March, 16, 8, 0))
	from, to = c.Bounds()
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.True(t, from.Equal(at(2024, time.March, 15, 0, 0)))
	assert.True(t, to.Equal(at(2024, time.March, 17, 0, 0).Add(-time.Nanosecond)))
}
