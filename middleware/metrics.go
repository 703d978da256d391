package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fitarc",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by route, method and status.",
}, []string{"route", "method", "status"})

func init() {
	prometheus.MustRegister(requestsTotal)
}

// RequestMetrics counts every handled request. Unmatched paths are grouped
// under "unmatched" to keep the label set bounded.
func RequestMetrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
