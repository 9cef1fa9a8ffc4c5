package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domaininv "github.com/geeky-dawood/snackstock-api/internal/domain/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// Metrics instrumentación Prometheus de la API: tráfico HTTP más los
// indicadores de negocio del inventario. Usa un registry propio para poder
// construir varias instancias (tests) sin colisiones.
type Metrics struct {
	registry *prometheus.Registry

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec

	// MovementsRegistered ajustes de stock aplicados, por tipo y motivo.
	MovementsRegistered *prometheus.CounterVec
	// StockUnderflows salidas rechazadas por dejar el stock negativo.
	StockUnderflows prometheus.Counter
}

// NewMetrics construye y registra los colectores. Los gauges de catálogo y
// valor del stock se calculan en cada scrape leyendo el repositorio.
func NewMetrics(productRepo repository.ProductRepository) *Metrics {
	registry := prometheus.NewRegistry()

	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snackstock_http_requests_total",
			Help: "Total de peticiones HTTP por método, ruta y código de estado.",
		},
		[]string{"method", "path", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snackstock_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	movementsRegistered := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snackstock_stock_movements_total",
			Help: "Ajustes de stock registrados, por tipo y motivo.",
		},
		[]string{"type", "reason"},
	)
	stockUnderflows := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "snackstock_stock_underflows_total",
			Help: "Salidas rechazadas por stock insuficiente.",
		},
	)
	productsTotal := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "snackstock_products_total",
			Help: "Productos en el catálogo.",
		},
		func() float64 {
			products, err := productRepo.List()
			if err != nil {
				return 0
			}
			return float64(len(products))
		},
	)
	inventoryValue := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "snackstock_inventory_value",
			Help: "Valor del stock en mano (sumatoria stock * precio).",
		},
		func() float64 {
			products, err := productRepo.List()
			if err != nil {
				return 0
			}
			total := 0.0
			for _, p := range products {
				v, _ := domaininv.StockValue(p).Float64()
				total += v
			}
			return total
		},
	)

	registry.MustRegister(requestCounter, requestLatency, movementsRegistered, stockUnderflows, productsTotal, inventoryValue)

	return &Metrics{
		registry:            registry,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		MovementsRegistered: movementsRegistered,
		StockUnderflows:     stockUnderflows,
	}
}

// Middleware registra contador y latencia por petición.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		path := c.Route().Path
		m.requestCounter.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.requestLatency.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el registry en formato Prometheus (GET /metrics).
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
