package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Auth-related Prometheus metrics. Standalone package so controllers,
// services and providers can all record without import cycles.

var (
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "learnhub_login_attempts_total",
		Help: "Social login callback attempts by provider and result",
	}, []string{"provider", "result"})

	ProviderLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "learnhub_provider_roundtrip_ms",
		Help:    "Provider token-exchange plus profile-fetch latency in milliseconds",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	}, []string{"provider"})

	TokensIssued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "learnhub_tokens_issued_total",
		Help: "Application tokens issued by kind (access/refresh)",
	}, []string{"kind"})
)

// Register registers the auth metrics on the given registry (or default if nil).
// Already-registered collectors are tolerated so tests can call this twice.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{LoginAttempts, ProviderLatency, TokensIssued} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
