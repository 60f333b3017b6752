package metrics

import (
	"time"

	"officer-mobility/internal/mobility"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides observability for the mobility engine. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	ProfilesBuilt    *prometheus.CounterVec
	TransfersCounted *prometheus.CounterVec
	OfficersSkipped  *prometheus.CounterVec
	FleetDuration    prometheus.Histogram
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProfilesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "officer_mobility_profiles_built_total",
			Help: "Officer geo-profiles requested, by outcome",
		}, []string{"outcome"}), // outcome: "ok", "not_found", "error"

		TransfersCounted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "officer_mobility_fleet_transfers_total",
			Help: "Transfers aggregated by fleet sweeps, by distance bucket",
		}, []string{"bucket"}),

		OfficersSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "officer_mobility_fleet_skipped_officers_total",
			Help: "Officers skipped during fleet sweeps, by reason",
		}, []string{"reason"}),

		FleetDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "officer_mobility_fleet_duration_seconds",
			Help:    "Duration of a fleet-wide mobility sweep including data loading",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	reg.MustRegister(m.ProfilesBuilt, m.TransfersCounted, m.OfficersSkipped, m.FleetDuration)
	return m
}

func (m *Metrics) IncrementProfile(outcome string) {
	if m != nil {
		m.ProfilesBuilt.WithLabelValues(outcome).Inc()
	}
}

// ObserveFleet records the buckets and skips of one finished sweep.
func (m *Metrics) ObserveFleet(report *mobility.FleetReport, d time.Duration) {
	if m == nil || report == nil {
		return
	}
	for bucket, n := range report.Summary.Buckets {
		m.TransfersCounted.WithLabelValues(string(bucket)).Add(float64(n))
	}
	for _, s := range report.Skipped {
		m.OfficersSkipped.WithLabelValues(s.Reason).Inc()
	}
	m.FleetDuration.Observe(d.Seconds())
}
