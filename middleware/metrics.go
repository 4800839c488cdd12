package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "atolye_http_requests_total",
	Help: "HTTP requests handled, by method, route and status.",
}, []string{"method", "path", "status"})

func init() {
	prometheus.MustRegister(httpRequests)
}

// Metrics counts every handled request. Uses the route template rather than
// the raw URL so /urunler/:id stays one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
