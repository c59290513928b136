package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/export"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/logger"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio de ventas en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memSales struct {
	mu    sync.Mutex
	byID  map[string]*entity.Sale
	clock time.Time
}

func newMemSales(clock time.Time) *memSales {
	return &memSales{byID: map[string]*entity.Sale{}, clock: clock}
}

func (r *memSales) Create(_ context.Context, s *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Metadata = entity.SaleMetadata{CreatedAt: r.clock, UpdatedAt: r.clock}
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *memSales) Update(_ context.Context, s *entity.Sale, expected *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[s.ID]
	if !ok || cur.StoreID != s.StoreID {
		return domain.ErrNotFound
	}
	if expected != nil && !cur.Metadata.UpdatedAt.Equal(*expected) {
		return domain.ErrConflict
	}
	s.Metadata.UpdatedAt = r.clock.Add(time.Minute)
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *memSales) Delete(_ context.Context, storeID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[id]
	if !ok || cur.StoreID != storeID {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memSales) GetByID(_ context.Context, storeID, id string) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[id]
	if !ok || cur.StoreID != storeID {
		return nil, nil
	}
	cp := *cur
	return &cp, nil
}

func (r *memSales) List(_ context.Context, q repository.SaleQuery) ([]*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Sale
	for _, s := range r.byID {
		if s.StoreID == q.StoreID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	art     = time.FixedZone("ART", -3*60*60)
	fixedAt = time.Date(2024, 3, 15, 18, 0, 0, 0, art)
)

func newSalesApp(t *testing.T) (*fiber.App, *memSales) {
	t.Helper()
	repo := newMemSales(fixedAt)
	saleUC := sales.NewSaleUseCase(repo, validation.New(), sales.Config{Location: art}).
		WithClock(func() time.Time { return fixedAt })
	exportUC := sales.NewExportUseCase(saleUC, export.NewCSVExporter(), export.NewXLSXExporter())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SaleUC:    saleUC,
		ExportUC:  exportUC,
		JWTSecret: testJWTSecret,
		Log:       logger.Nop(),
	})
	return app, repo
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func call(t *testing.T, app *fiber.App, method, path, role, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", bearer(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

type result struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func decodeResult(t *testing.T, raw []byte) result {
	t.Helper()
	var r result
	require.NoError(t, json.Unmarshal(raw, &r), string(raw))
	return r
}

const saleBody = `{
	"source": "whatsapp",
	"customer": {"name": "José García"},
	"items": [{"product_id": "p1", "product_name": "Café", "quantity": 2, "unit_price": 100,
		"variants": [{"name": "Grande", "price": 20}]}],
	"delivery": {"method": "retiro"},
	"payment": {"method": "efectivo"},
	"discount": 40
}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_CreateCalculaTotales(t *testing.T) {
	app, repo := newSalesApp(t)

	resp, raw := call(t, app, http.MethodPost, "/api/sales", "staff", saleBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	r := decodeResult(t, raw)
	assert.True(t, r.Success)
	var sale struct {
		OrderNumber string `json:"order_number"`
		StoreID     string `json:"store_id"`
		Totals      struct {
			Subtotal string `json:"subtotal"`
			Total    string `json:"total"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(r.Data, &sale))
	assert.Equal(t, "VTA-1710536400000", sale.OrderNumber)
	assert.Equal(t, testStoreID, sale.StoreID)
	assert.Equal(t, "240", sale.Totals.Subtotal)
	assert.Equal(t, "200", sale.Totals.Total)
	assert.Len(t, repo.byID, 1)
}

func TestSales_CreateDeliverySinDireccion(t *testing.T) {
	app, _ := newSalesApp(t)
	body := strings.Replace(saleBody, `"method": "retiro"`, `"method": "delivery"`, 1)

	resp, raw := call(t, app, http.MethodPost, "/api/sales", "owner", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	r := decodeResult(t, raw)
	assert.False(t, r.Success)
	assert.Contains(t, r.Errors, "delivery.address")
}

func TestSales_CuerpoInvalido(t *testing.T) {
	app, _ := newSalesApp(t)
	resp, raw := call(t, app, http.MethodPost, "/api/sales", "owner", `{"items": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeResult(t, raw).Errors, "_form")
}

func TestSales_ListConFiltroYEstadisticas(t *testing.T) {
	app, _ := newSalesApp(t)
	_, _ = call(t, app, http.MethodPost, "/api/sales", "owner", saleBody)

	resp, raw := call(t, app, http.MethodGet, "/api/sales?customer=garc%C3%ADa&source=whatsapp", "staff", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var list struct {
		Items []json.RawMessage `json:"items"`
		Stats struct {
			TotalOrders int `json:"total_orders"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(decodeResult(t, raw).Data, &list))
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Stats.TotalOrders)

	resp, raw = call(t, app, http.MethodGet, "/api/sales?customer=pedro", "staff", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeResult(t, raw).Data, &list))
	assert.Empty(t, list.Items)
}

func TestSales_ListFechaInvalida(t *testing.T) {
	app, _ := newSalesApp(t)
	resp, raw := call(t, app, http.MethodGet, "/api/sales?start_date=15-03-2024", "owner", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeResult(t, raw).Errors, "start_date")
}

func TestSales_GetInexistente404(t *testing.T) {
	app, _ := newSalesApp(t)
	resp, _ := call(t, app, http.MethodGet, "/api/sales/no-existe", "owner", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSales_PatchConPrecondicionVencida409(t *testing.T) {
	app, repo := newSalesApp(t)
	_, raw := call(t, app, http.MethodPost, "/api/sales", "owner", saleBody)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeResult(t, raw).Data, &created))
	require.Contains(t, repo.byID, created.ID)

	stale := fixedAt.Add(-time.Hour).Format(time.RFC3339)
	resp, raw := call(t, app, http.MethodPatch, "/api/sales/"+created.ID, "owner",
		`{"notes": "sin azúcar", "expected_updated_at": "`+stale+`"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, decodeResult(t, raw).Errors, "_form")

	resp, _ = call(t, app, http.MethodPatch, "/api/sales/"+created.ID, "owner", `{"notes": "sin azúcar"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSales_DeleteSoloOwner(t *testing.T) {
	app, _ := newSalesApp(t)
	_, raw := call(t, app, http.MethodPost, "/api/sales", "owner", saleBody)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeResult(t, raw).Data, &created))

	resp, _ := call(t, app, http.MethodDelete, "/api/sales/"+created.ID, "staff", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodDelete, "/api/sales/"+created.ID, "owner", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodDelete, "/api/sales/"+created.ID, "owner", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSales_ExportCSV(t *testing.T) {
	app, _ := newSalesApp(t)
	_, _ = call(t, app, http.MethodPost, "/api/sales", "owner", saleBody)

	resp, raw := call(t, app, http.MethodGet, "/api/sales/export?format=csv", "owner", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ventas_2024-03-15.csv")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	lines := strings.Split(string(raw), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"15/03/2024 18:00","José García",200.00,"Efectivo","Retiro"`, lines[1])
}

func TestSales_ExportFormatoDesconocido(t *testing.T) {
	app, _ := newSalesApp(t)
	resp, raw := call(t, app, http.MethodGet, "/api/sales/export?format=pdf", "owner", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeResult(t, raw).Errors, "format")
}

func TestSales_SinToken401(t *testing.T) {
	app, _ := newSalesApp(t)
	resp, _ := call(t, app, http.MethodGet, "/api/sales", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
