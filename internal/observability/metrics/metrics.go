package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	registerOnce                   sync.Once
	metricsRouter                  *chi.Mux
	clientRequestDurationHistogram *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	dbLatency                      *prometheus.HistogramVec
	taostatsClientLatency          *prometheus.HistogramVec
	refreshRunDuration             *prometheus.HistogramVec
	refreshSubnetOutcomeCounter    *prometheus.CounterVec
	lastRefreshTimestampGauge      prometheus.Gauge
	storedSubnetsGauge             prometheus.Gauge
)

// Init starts the metrics server on addr and registers the collectors.
// Tests pass a ":0" address to let the OS pick a free port.
func Init(addr string) {
	once.Do(func() {
		initMetricsRouter(addr)
		Register()
	})
}

// Register creates the collectors without serving them, for short lived
// commands that must not occupy the metrics port.
func Register() {
	registerOnce.Do(registerMetrics)
}

func initMetricsRouter(addr string) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         addr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", addr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	taostatsClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taostats_client_latency_seconds",
			Help:    "Histogram of taostats client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	// a full run over 128 subnets with default pacing takes ~40s
	refreshRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "refresh_run_duration_seconds",
			Help:    "Histogram of subnet refresh run durations in seconds.",
			Buckets: []float64{1, 5, 15, 30, 45, 60, 120, 300},
		},
		[]string{"status"},
	)

	refreshSubnetOutcomeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_subnet_outcome_total",
			Help: "Number of processed subnets during refresh runs by outcome and failure kind",
		},
		[]string{"status", "kind"},
	)

	lastRefreshTimestampGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "refresh_last_completed_timestamp_seconds",
			Help: "Unix time of the last completed refresh run",
		},
	)

	storedSubnetsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stored_subnets_count",
			Help: "Number of subnet records returned by the last full listing",
		},
	)

	prometheus.MustRegister(
		clientRequestDurationHistogram,
		taostatsClientLatency,
		pollerDurationHistogram,
		dbLatency,
		refreshRunDuration,
		refreshSubnetOutcomeCounter,
		lastRefreshTimestampGauge,
		storedSubnetsGauge,
	)
}

func RecordTaostatsClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	taostatsClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordRefreshRun(d time.Duration, failure bool) {
	status := Success
	if failure {
		status = Error
	} else {
		lastRefreshTimestampGauge.SetToCurrentTime()
	}

	refreshRunDuration.WithLabelValues(status.String()).Observe(d.Seconds())
}

// RecordSubnetOutcome counts a processed netuid. kind is empty for successes.
func RecordSubnetOutcome(kind string) {
	status := Success
	if kind != "" {
		status = Error
	}

	refreshSubnetOutcomeCounter.WithLabelValues(status.String(), kind).Inc()
}

func RecordStoredSubnets(count int) {
	storedSubnetsGauge.Set(float64(count))
}

// RecordPollerDuration wraps a poll method so every run is observed under
// the given poller type, e.g. "refresh" or "price".
func RecordPollerDuration(typ string, poll func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		start := time.Now()
		err := poll(ctx)

		status := Success
		if err != nil {
			status = Error
		}
		pollerDurationHistogram.WithLabelValues(typ, status.String()).Observe(time.Since(start).Seconds())

		return err
	}
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
