package leads

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded by Metrics
const (
	OutcomeDelivered      = "delivered"
	OutcomeDeliveryFailed = "delivery_failed"
	OutcomeInvalid        = "invalid"
)

// Metrics counts lead submissions by form and outcome.
type Metrics struct {
	submissions *prometheus.CounterVec
}

// NewMetrics registers the lead counters with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flexxoo",
			Name:      "lead_submissions_total",
			Help:      "Lead form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
	}
	if err := reg.Register(m.submissions); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(form Form, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(string(form), outcome).Inc()
}
