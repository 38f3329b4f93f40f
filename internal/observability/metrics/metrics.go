package metrics

import "github.com/prometheus/client_golang/prometheus"

// EnquiryMetrics exposes counters/histograms for the enquiry pipeline.
type EnquiryMetrics struct {
	submissionsTotal *prometheus.CounterVec
	deliveryLatency  *prometheus.HistogramVec
}

func NewEnquiryMetrics(reg prometheus.Registerer) *EnquiryMetrics {
	m := &EnquiryMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "enquiry",
			Name:      "submissions_total",
			Help:      "Total enquiry submissions by validation outcome",
		}, []string{"outcome"}),
		deliveryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "enquiry",
			Name:      "delivery_seconds",
			Help:      "Latency of email delivery attempts by outcome",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.deliveryLatency)
	return m
}

func (m *EnquiryMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *EnquiryMetrics) ObserveDelivery(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.deliveryLatency.WithLabelValues(outcome).Observe(seconds)
}
