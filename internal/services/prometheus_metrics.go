package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"wallet-burner/internal/models"
)

type PrometheusMetrics struct {
	assetRequestsTotal     *prometheus.CounterVec
	assetRequestDuration   prometheus.Histogram
	assetsReturned         *prometheus.HistogramVec
	providerLookupsTotal   *prometheus.CounterVec
	providerLookupDuration *prometheus.HistogramVec
	circuitBreakerState    *prometheus.GaugeVec
	burnRequestsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		assetRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asset_requests_total",
				Help: "Total number of wallet asset aggregation requests",
			},
			[]string{"status"},
		),
		assetRequestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "asset_request_duration_milliseconds",
				Help:    "Wallet asset aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		assetsReturned: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "assets_returned",
				Help:    "Number of assets returned per request by classification",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"classification"},
		),
		providerLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metadata_provider_lookups_total",
				Help: "Total number of metadata provider lookups",
			},
			[]string{"provider", "status"},
		),
		providerLookupDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "metadata_provider_lookup_duration_milliseconds",
				Help:    "Metadata provider lookup duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"provider"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"provider"},
		),
		burnRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "burn_requests_total",
				Help: "Total number of mocked burn requests",
			},
			[]string{"asset_type", "status"},
		),
	}
}

func (m *PrometheusMetrics) RecordAssetRequest(status string, duration time.Duration) {
	m.assetRequestsTotal.WithLabelValues(status).Inc()
	m.assetRequestDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAssetsReturned(tokens, nfts, cnfts int) {
	m.assetsReturned.WithLabelValues(string(models.ClassificationFungibleToken)).Observe(float64(tokens))
	m.assetsReturned.WithLabelValues(string(models.ClassificationNFT)).Observe(float64(nfts))
	m.assetsReturned.WithLabelValues(string(models.ClassificationCompressedNFT)).Observe(float64(cnfts))
}

func (m *PrometheusMetrics) RecordProviderLookup(provider, status string, duration time.Duration) {
	m.providerLookupsTotal.WithLabelValues(provider, status).Inc()
	m.providerLookupDuration.WithLabelValues(provider).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordCircuitBreakerState(provider string, state models.CircuitBreakerState) {
	m.circuitBreakerState.WithLabelValues(provider).Set(float64(state))
}

func (m *PrometheusMetrics) RecordBurnRequest(assetType, status string) {
	m.burnRequestsTotal.WithLabelValues(assetType, status).Inc()
}
