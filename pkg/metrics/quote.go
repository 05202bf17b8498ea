package metrics

import "github.com/prometheus/client_golang/prometheus"

// QuoteMetrics tracks quote engine activity.
type QuoteMetrics struct {
	built       *prometheus.CounterVec
	couponOps   *prometheus.CounterVec
	validations *prometheus.CounterVec
	swept       prometheus.Counter
}

// NewQuoteMetrics registers the quote engine metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	built := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_built_total",
		Help: "Quotes created or rebuilt, labeled by resulting status.",
	}, []string{"status"})
	couponOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_coupon_operations_total",
		Help: "Coupon apply/remove attempts, labeled by operation and outcome.",
	}, []string{"operation", "outcome"})
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_payment_validations_total",
		Help: "Payment readiness checks, labeled by outcome.",
	}, []string{"outcome"})
	swept := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotes_swept_total",
		Help: "Expired quote sessions removed by the sweep.",
	})
	reg.MustRegister(built, couponOps, validations, swept)
	return &QuoteMetrics{
		built:       built,
		couponOps:   couponOps,
		validations: validations,
		swept:       swept,
	}
}

// IncBuilt counts a quote build for the given status.
func (q *QuoteMetrics) IncBuilt(status string) {
	if q == nil || q.built == nil {
		return
	}
	q.built.WithLabelValues(normalizeLabel(status)).Inc()
}

// IncCouponOp counts a coupon operation outcome.
func (q *QuoteMetrics) IncCouponOp(operation string, success bool) {
	if q == nil || q.couponOps == nil {
		return
	}
	q.couponOps.WithLabelValues(normalizeLabel(operation), outcomeLabel(success)).Inc()
}

// IncValidation counts a payment validation outcome.
func (q *QuoteMetrics) IncValidation(valid bool) {
	if q == nil || q.validations == nil {
		return
	}
	q.validations.WithLabelValues(outcomeLabel(valid)).Inc()
}

// AddSwept counts sessions removed by an expiry sweep.
func (q *QuoteMetrics) AddSwept(count int) {
	if q == nil || q.swept == nil || count <= 0 {
		return
	}
	q.swept.Add(float64(count))
}

func outcomeLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
