// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "proforma"

var (
	QuotesDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_dispatched_total",
		Help:      "Quotes rendered for an outbound channel.",
	}, []string{"channel"})

	LineItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "line_items_added_total",
		Help:      "Line items confirmed into a quote session.",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quote_sessions_active",
		Help:      "Quote sessions currently held in memory.",
	})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact messages stored, by entry path.",
	}, []string{"source"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Channel labels for QuotesDispatched.
const (
	ChannelWhatsApp    = "whatsapp"
	ChannelContactForm = "contact_form"
)

// GinMiddleware records request latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
