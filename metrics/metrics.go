package metrics

import (
	"net/http"
	"scanv/scan"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector turns run results into Prometheus metrics. It is a scan.ResultsLogger.
type Collector struct {
	runsTotal     *prometheus.CounterVec
	findingsTotal *prometheus.CounterVec
	faultsTotal   *prometheus.CounterVec
	snapshotSize  prometheus.Gauge
}

// NewCollector creates the scanner metrics and registers them with registry.
func NewCollector(registry prometheus.Registerer) *Collector {
	c := &Collector{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scanv_runs_total",
			Help: "Total number of scan runs, by snapshot source status",
		}, []string{"source_status"}),
		findingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scanv_findings_total",
			Help: "Total number of dispatched findings, by rule and action result",
		}, []string{"rule", "result"}),
		faultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scanv_rule_faults_total",
			Help: "Total number of rule evaluations that faulted",
		}, []string{"rule"}),
		snapshotSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scanv_snapshot_records",
			Help: "Number of in-flight requests in the last snapshot",
		}),
	}
	registry.MustRegister(c.runsTotal, c.findingsTotal, c.faultsTotal, c.snapshotSize)
	return c
}

// Handler serves the metrics gathered by registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

func (c *Collector) FindingDispatched(runID string, f scan.Finding) {
	c.findingsTotal.WithLabelValues(f.RuleName, f.Result.String()).Inc()
}

func (c *Collector) RuleFaulted(runID string, ruleName string, err error) {
	c.faultsTotal.WithLabelValues(ruleName).Inc()
}

func (c *Collector) SourceUnavailable(runID string, err error) {
}

func (c *Collector) RunCompleted(s scan.RunSummary) {
	c.runsTotal.WithLabelValues(s.SourceStatus.String()).Inc()
	if s.SourceStatus == scan.SourceOK {
		c.snapshotSize.Set(float64(s.SnapshotSize))
	}
}
