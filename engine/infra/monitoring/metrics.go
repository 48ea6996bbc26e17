package monitoring

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craftchat_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// ChatTurnsTotal counts chat turns by outcome (ok, empty_message,
	// no_api_key, llm_error).
	ChatTurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craftchat_chat_turns_total",
		Help: "Chat turns processed, by outcome.",
	}, []string{"outcome"})

	// ProbeResultsTotal counts status probes by outcome (online, offline).
	ProbeResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craftchat_probe_results_total",
		Help: "Minecraft status probes performed, by outcome.",
	}, []string{"outcome"})
)

// Middleware counts every request against its matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
