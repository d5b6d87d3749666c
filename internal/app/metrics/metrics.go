package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChannelsTotal tracks the number of channels in the last fetched playlist
	ChannelsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgsync_channels_total",
		Help: "Number of channels parsed from the last playlist fetch",
	})

	// MatchedChannels tracks channels paired with an EPG record by the fuzzy pass
	MatchedChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgsync_matched_channels",
		Help: "Channels matched to an EPG identifier in the last fuzzy pass",
	})

	// UnmatchedChannels tracks channels with no EPG candidate above the threshold
	UnmatchedChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgsync_unmatched_channels",
		Help: "Channels left unmatched in the last fuzzy pass",
	})

	// ResolvedChannels tracks channels resolved by the override table
	ResolvedChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgsync_resolved_channels",
		Help: "Channels resolved by the override table in the last clean pass",
	})

	// RefreshesTotal tracks scheduled playlist refreshes by outcome
	RefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epgsync_refreshes_total",
		Help: "Total number of playlist refresh runs",
	}, []string{"status"})

	// HTTPRequestsTotal tracks HTTP requests by path and status code
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epgsync_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "code"})
)

// RecordRefresh increments the refresh counter with its outcome.
func RecordRefresh(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	RefreshesTotal.WithLabelValues(status).Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(path, code string) {
	HTTPRequestsTotal.WithLabelValues(path, code).Inc()
}

// SetMatchCounts updates the gauges after a fuzzy pass.
func SetMatchCounts(channels, matched, unmatched int) {
	ChannelsTotal.Set(float64(channels))
	MatchedChannels.Set(float64(matched))
	UnmatchedChannels.Set(float64(unmatched))
}

// SetResolvedCount updates the gauge after an override pass.
func SetResolvedCount(resolved int) {
	ResolvedChannels.Set(float64(resolved))
}
