package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vizigo"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	storeOps = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Latency of document store calls by collection, operation and outcome.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"collection", "op", "outcome"},
	)

	bikesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bikes_created_total",
			Help:      "Count of bike listings created.",
		},
	)

	bikeIDCollisions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bike_id_collisions_total",
			Help:      "Count of generated bike ids that were already taken.",
		},
	)

	rentalsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rental_requests_created_total",
			Help:      "Count of rental requests created.",
		},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rental_notifications_total",
			Help:      "Count of rental notifications by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, storeOps, bikesCreated, bikeIDCollisions, rentalsCreated, notifications)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func ObserveStoreOp(collection, op string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	storeOps.WithLabelValues(collection, op, outcome).Observe(elapsed.Seconds())
}

func IncBikeCreated() {
	bikesCreated.Inc()
}

func IncBikeIDCollision() {
	bikeIDCollisions.Inc()
}

func IncRentalCreated() {
	rentalsCreated.Inc()
}

func IncNotification(outcome string) {
	notifications.WithLabelValues(outcome).Inc()
}
