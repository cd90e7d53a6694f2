package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// =============================================================================
// 📊 投票引擎指标收集器
// =============================================================================

// Collector 指标收集器
type Collector struct {
	// 决策指标
	decisionsTotal     *prometheus.CounterVec
	decisionDuration   *prometheus.HistogramVec
	ballotsPerDecision *prometheus.HistogramVec

	// 采样指标
	ballotsTotal     *prometheus.CounterVec
	sampleDuration   *prometheus.HistogramVec
	inflightSamples  *prometheus.GaugeVec
	providerFailures *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector 创建指标收集器
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	// 决策指标
	c.decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Total number of consensus decisions by outcome",
		},
		[]string{"provider", "outcome"},
	)

	c.decisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decision_duration_seconds",
			Help:      "Consensus decision duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"provider"},
	)

	c.ballotsPerDecision = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ballots_per_decision",
			Help:      "Number of ballots consumed per decision",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		},
		[]string{"provider", "outcome"},
	)

	// 采样指标
	c.ballotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ballots_total",
			Help:      "Total number of ballots by status",
		},
		[]string{"provider", "status"}, // status: counted, red_flagged
	)

	c.sampleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_duration_seconds",
			Help:      "Single sampling call duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	c.inflightSamples = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inflight_samples",
			Help:      "Number of sampling calls currently in flight",
		},
		[]string{"provider"},
	)

	c.providerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_failures_total",
			Help:      "Total number of provider call failures",
		},
		[]string{"provider"},
	)

	return c
}

// RecordDecision 记录一次完成的决策
func (c *Collector) RecordDecision(provider, outcome string, ballots int, duration time.Duration) {
	c.decisionsTotal.WithLabelValues(provider, outcome).Inc()
	c.decisionDuration.WithLabelValues(provider).Observe(duration.Seconds())
	c.ballotsPerDecision.WithLabelValues(provider, outcome).Observe(float64(ballots))
}

// RecordBallot 记录一张选票
func (c *Collector) RecordBallot(provider string, redFlagged bool, latency time.Duration) {
	status := "counted"
	if redFlagged {
		status = "red_flagged"
	}
	c.ballotsTotal.WithLabelValues(provider, status).Inc()
	c.sampleDuration.WithLabelValues(provider).Observe(latency.Seconds())
}

// RecordProviderFailure 记录一次供应商调用失败
func (c *Collector) RecordProviderFailure(provider string) {
	c.providerFailures.WithLabelValues(provider).Inc()
}

// SampleStarted 采样调用进入在途状态
func (c *Collector) SampleStarted(provider string) {
	c.inflightSamples.WithLabelValues(provider).Inc()
}

// SampleFinished 采样调用离开在途状态
func (c *Collector) SampleFinished(provider string) {
	c.inflightSamples.WithLabelValues(provider).Dec()
}
