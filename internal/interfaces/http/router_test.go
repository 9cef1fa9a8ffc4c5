package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geeky-dawood/snackstock-api/internal/application/analytics"
	"github.com/geeky-dawood/snackstock-api/internal/application/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/application/reports"
	"github.com/geeky-dawood/snackstock-api/internal/application/usecase"
	"github.com/geeky-dawood/snackstock-api/internal/infrastructure/memory"
	"github.com/geeky-dawood/snackstock-api/internal/infrastructure/pdf"
	apphttp "github.com/geeky-dawood/snackstock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa contra un store vacío en
// memoria, con el router real y todas sus dependencias.
func buildTestApp() (*fiber.App, *memory.Store) {
	store := memory.NewStore()
	metrics := apphttp.NewMetrics(store.Products())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:    usecase.NewProductUseCase(store.Products()),
		AdjustStock:  inventory.NewAdjustStockUseCase(store),
		MovementUC:   inventory.NewMovementUseCase(store.Movements(), store.Products()),
		DashboardUC:  analytics.NewDashboardUseCase(store.Products(), store.Movements()),
		ReportsUC:    analytics.NewReportsUseCase(store.Products(), store.Movements()),
		InventoryPDF: reports.NewPDFUseCase(store.Products(), pdf.NewMarotoInventoryReport("Snack Shop Test")),
		Metrics:      metrics,
	})
	return app, store
}

// doJSON lanza una petición con body JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode decodifica el body JSON en un mapa genérico.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// createTestProduct crea un producto vía API y devuelve su ID.
func createTestProduct(t *testing.T, app *fiber.App, stock, minStock int) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"name":      "CandyLand Chillz",
		"category":  "Candies",
		"sku":       "CHZ-003",
		"stock":     stock,
		"min_stock": minStock,
		"price":     "25",
		"cost":      "15",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsAPI_CrearYObtener(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 50, 10)

	resp := doJSON(t, app, http.MethodGet, "/api/products/"+id, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "CandyLand Chillz", body["name"])
	assert.Equal(t, float64(50), body["stock"])
	assert.Equal(t, "in_stock", body["stock_status"])
}

func TestProductsAPI_CrearInvalido_Retorna400(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"name": "", "category": "Candies", "sku": "X-1", "price": "25",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestProductsAPI_GetInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

func TestProductsAPI_ActualizarParcial(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 50, 10)

	resp := doJSON(t, app, http.MethodPut, "/api/products/"+id, fiber.Map{
		"name": "CandyLand Chillz (grande)",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "CandyLand Chillz (grande)", body["name"])
	assert.Equal(t, "Candies", body["category"], "los campos no enviados se conservan")
}

func TestProductsAPI_EliminarYListar(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 50, 10)

	resp := doJSON(t, app, http.MethodDelete, "/api/products/"+id, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+id, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "borrar dos veces no es idempotente silencioso")

	resp = doJSON(t, app, http.MethodGet, "/api/products/", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	page, _ := body["page"].(map[string]any)
	require.NotNil(t, page)
	assert.Equal(t, float64(0), page["total"])
}

func TestProductsAPI_LowStock(t *testing.T) {
	app, _ := buildTestApp()
	createTestProduct(t, app, 10, 10) // en la frontera: cuenta

	resp := doJSON(t, app, http.MethodGet, "/api/products/low-stock", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "low_stock", items[0]["stock_status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryAPI_AjusteDeSalida(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 10, 3)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": id, "type": "out", "quantity": 4, "reason": "Sale",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+id, nil)
	defer resp.Body.Close()
	body := decode(t, resp)
	assert.Equal(t, float64(6), body["stock"])
}

func TestInventoryAPI_StockInsuficiente_Retorna409(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 5, 3)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": id, "type": "out", "quantity": 6, "reason": "Sale",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INSUFFICIENT_STOCK")

	// el rechazo no tocó el stock ni generó movimiento
	check := doJSON(t, app, http.MethodGet, "/api/products/"+id, nil)
	defer check.Body.Close()
	assert.Equal(t, float64(5), decode(t, check)["stock"])
}

func TestInventoryAPI_AjusteInvalido_Retorna400(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 5, 3)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": id, "type": "sideways", "quantity": 1, "reason": "Sale",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryAPI_ProductoDesconocido_Retorna404(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": "no-existe", "type": "in", "quantity": 1, "reason": "Restock",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventoryAPI_MovimientosFiltrados(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 20, 3)

	for _, m := range []fiber.Map{
		{"product_id": id, "type": "out", "quantity": 2, "reason": "Sale"},
		{"product_id": id, "type": "out", "quantity": 1, "reason": "Damage"},
		{"product_id": id, "type": "in", "quantity": 5, "reason": "Restock"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", m)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/movements?type=out", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "Damage", items[0]["reason"], "el más reciente va primero")
	assert.Equal(t, "CandyLand Chillz", items[0]["product_name"], "el producto se resuelve contra el catálogo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard, analítica y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardAPI_Summary(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 10, 3)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": id, "type": "out", "quantity": 2, "reason": "Sale",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(1), body["total_products"])
	assert.Equal(t, "200", body["total_value"], "8 unidades * precio 25")
	assert.Equal(t, float64(2), body["total_sales_quantity"])
}

func TestAnalyticsAPI_TopSelling(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 30, 3)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": id, "type": "out", "quantity": 7, "reason": "Sale",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/reports/top-selling?limit=1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(7), items[0]["quantity_sold"])
}

func TestReportsAPI_RangoDeFechasInvalido_Retorna400(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/reports/sales?from=ayer", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportsAPI_InventoryPDF(t *testing.T) {
	app, _ := buildTestApp()
	createTestProduct(t, app, 10, 3)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/inventory/pdf", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestMetricsAPI_ExponeContadores(t *testing.T) {
	app, _ := buildTestApp()
	id := createTestProduct(t, app, 5, 3)

	// un rechazo por stock insuficiente para mover el contador
	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": id, "type": "out", "quantity": 99, "reason": "Sale",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/metrics", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	metrics := string(raw)
	assert.Contains(t, metrics, "snackstock_products_total 1")
	assert.Contains(t, metrics, "snackstock_stock_underflows_total 1")
	assert.Contains(t, metrics, "snackstock_http_requests_total")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de demostración
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedDemoData_CatalogoInicial(t *testing.T) {
	store := memory.NewStore()
	n := memory.SeedDemoData(store)
	assert.Equal(t, 12, n)

	products, err := store.Products().List()
	require.NoError(t, err)
	assert.Len(t, products, 12)
}
