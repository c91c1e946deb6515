package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/powerpig99/simple-chatbot/pkg/domain"
)

const namespace = "chatbot"

// Metrics holds the chatbot counters.
type Metrics struct {
	turns     prometheus.Counter
	responses *prometheus.CounterVec
	gatherer  prometheus.Gatherer
}

// NewMetrics creates the counters and registers them on reg.
// A nil reg gets a fresh private registry.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		turns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Number of answered operator lines.",
		}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_total",
			Help:      "Number of responses by matching pattern.",
		}, []string{"pattern"}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.turns, m.responses} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// ObserveReply records one answered turn.
func (m *Metrics) ObserveReply(r domain.Reply) {
	m.turns.Inc()
	m.responses.WithLabelValues(r.Pattern).Inc()
}

// Turns returns the turn counter.
func (m *Metrics) Turns() prometheus.Counter {
	return m.turns
}

// Responses returns the per-pattern response counter.
func (m *Metrics) Responses() *prometheus.CounterVec {
	return m.responses
}

// Snapshot returns the current response counts keyed by pattern.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != namespace+"_responses_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			out[patternLabel(metric)] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

func patternLabel(m *dto.Metric) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == "pattern" {
			return l.GetValue()
		}
	}
	return ""
}
