package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testStoreID   = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "tienda-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_OwnerAccedeRutaOwner(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, tokenForRole(t, "owner"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"owner debe poder acceder a ruta restringida a owner")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "owner", body["role"], "el role debe ser owner")
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_StaffAccedeRutaOwnerOStaff(t *testing.T) {
	app := buildTestApp("owner", "staff")
	resp := doRequest(t, app, tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"staff debe poder acceder a ruta que permite owner o staff")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_StaffBloqueadoEnRutaOwner(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"staff no debe poder acceder a ruta restringida a owner")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: token sin store_id (cuenta legacy) → HTTP 403 MISSING_STORE.
func TestAuthMiddleware_TokenSinTienda_Retorna403(t *testing.T) {
	app := buildTestApp("owner")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", "owner", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_STORE")
}

// Caso 3: Token sin claim de rol (emulado con token vacío) → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	// Generamos un token con rol vacío para simular un token legacy sin el claim.
	app := buildTestApp("owner")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"store_id":   apphttp.GetStoreID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testStoreID, body["store_id"])
	assert.Equal(t, "owner", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de roles sobre las rutas del Router
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_StaffBloqueadoEnRutasDeOwner(t *testing.T) {
	app, _ := newSalesApp(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/sales/export?format=csv"},
		{http.MethodGet, "/api/sales/export?format=xlsx&include_stats=true"},
		{http.MethodDelete, "/api/sales/cualquiera"},
		{http.MethodPut, "/api/store"},
		{http.MethodPost, "/api/categories"},
		{http.MethodDelete, "/api/categories/c1"},
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/p1"},
		{http.MethodDelete, "/api/products/p1"},
	}
	for _, r := range routes {
		resp, raw := call(t, app, r.method, r.path, "staff", "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s: %s", r.method, r.path, raw)

		var body struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "FORBIDDEN", body.Code, "%s %s", r.method, r.path)
	}
}

func TestRouter_StaffOperaVentas(t *testing.T) {
	app, _ := newSalesApp(t)

	resp, raw := call(t, app, http.MethodPost, "/api/sales", "staff", saleBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeResult(t, raw).Data, &created))

	resp, _ = call(t, app, http.MethodGet, "/api/sales", "staff", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/sales/"+created.ID, "staff", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = call(t, app, http.MethodPatch, "/api/sales/"+created.ID, "staff", `{"notes": "sin azúcar"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
}

func TestRouter_OwnerExporta(t *testing.T) {
	app, _ := newSalesApp(t)

	resp, raw := call(t, app, http.MethodGet, "/api/sales/export?format=xlsx", "owner", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ventas_2024-03-15.xlsx")
}

func TestRouter_RolDesconocidoBloqueado(t *testing.T) {
	app, _ := newSalesApp(t)

	resp, _ := call(t, app, http.MethodGet, "/api/sales", "cliente", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
