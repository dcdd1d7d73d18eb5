package dieselgpu

import "github.com/prometheus/client_golang/prometheus"

var (
	instanceCreatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dieselgpu",
			Name:      "instance_creates_total",
			Help:      "Instance creation attempts by outcome",
		},
		[]string{"outcome"},
	)

	nativeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dieselgpu",
			Name:      "native_failures_total",
			Help:      "Native status failures reported through LogResult",
		},
		[]string{"status"},
	)

	diagnosticsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dieselgpu",
			Name:      "diagnostics_total",
			Help:      "Validation layer messages forwarded to the log",
		},
		[]string{"level"},
	)
)

func init() {
	prometheus.MustRegister(instanceCreatesTotal, nativeFailuresTotal, diagnosticsTotal)
}
