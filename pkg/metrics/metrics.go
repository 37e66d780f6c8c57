// Package metrics expone métricas Prometheus del servidor HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP en segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Init registra las métricas en el registro por defecto.
// Debe llamarse una sola vez al arrancar.
func Init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration)
}

// Handler devuelve el handler estándar de Prometheus (para montar con adaptor).
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instrumenta cada petición con contador y histograma de latencia.
// Usa la ruta registrada (c.Route().Path) para no explotar la cardinalidad con IDs.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		return err
	}
}
