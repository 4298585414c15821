package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics.
var (
	CompletionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askdb",
			Name:      "completion_requests_total",
			Help:      "Total number of completion requests",
		},
		[]string{"provider", "model", "status"},
	)

	CompletionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "askdb",
			Name:      "completion_request_duration_seconds",
			Help:      "Completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	CompletionTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askdb",
			Name:      "completion_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	ParseFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askdb",
			Name:      "parse_failures_total",
			Help:      "Completion outputs where no JSON intent could be extracted",
		},
		[]string{"reason"}, // "no_delimiters" / "malformed"
	)

	IntentRepairsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askdb",
			Name:      "intent_repairs_total",
			Help:      "Intents repaired by the validator",
		},
		[]string{"field"}, // "kind" / "collection" / "all"
	)

	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askdb",
			Name:      "dispatch_total",
			Help:      "Store dispatches by intent kind",
		},
		[]string{"kind", "status"},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(CompletionRequestsTotal)
	prometheus.MustRegister(CompletionRequestDuration)
	prometheus.MustRegister(CompletionTokensTotal)
	prometheus.MustRegister(ParseFailuresTotal)
	prometheus.MustRegister(IntentRepairsTotal)
	prometheus.MustRegister(DispatchTotal)
	pipelineMetricsRegistered = true
}
