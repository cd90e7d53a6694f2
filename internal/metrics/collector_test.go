package metrics

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var collectorNamespaceSeq uint64

func nextTestNamespace() string {
	seq := atomic.AddUint64(&collectorNamespaceSeq, 1)
	return fmt.Sprintf("test_%d", seq)
}

func TestNewCollector(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	assert.NotNil(t, collector)
	assert.NotNil(t, collector.decisionsTotal)
	assert.NotNil(t, collector.decisionDuration)
	assert.NotNil(t, collector.ballotsTotal)
	assert.NotNil(t, collector.inflightSamples)
}

func TestCollector_RecordDecision(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordDecision("openai", "WON", 3, 2*time.Second)
	collector.RecordDecision("openai", "INCONCLUSIVE", 40, 30*time.Second)

	count := testutil.CollectAndCount(collector.decisionsTotal)
	assert.Equal(t, 2, count)
}

func TestCollector_RecordBallot(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordBallot("openai", false, 200*time.Millisecond)
	collector.RecordBallot("openai", true, 150*time.Millisecond)

	counted := testutil.ToFloat64(collector.ballotsTotal.WithLabelValues("openai", "counted"))
	flagged := testutil.ToFloat64(collector.ballotsTotal.WithLabelValues("openai", "red_flagged"))
	assert.Equal(t, 1.0, counted)
	assert.Equal(t, 1.0, flagged)
}

func TestCollector_InflightGauge(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.SampleStarted("openai")
	collector.SampleStarted("openai")
	collector.SampleFinished("openai")

	value := testutil.ToFloat64(collector.inflightSamples.WithLabelValues("openai"))
	assert.Equal(t, 1.0, value)
}
