package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks verification traffic per source and outcome so operators
// can see which provider in the chain is actually doing the work.
type Collector struct {
	registry *prometheus.Registry

	verifications *prometheus.CounterVec
	providerCalls *prometheus.CounterVec
	bankListings  *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miles",
			Name:      "verifications_total",
			Help:      "Account verification requests by final outcome and winning source.",
		}, []string{"outcome", "source"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miles",
			Name:      "provider_calls_total",
			Help:      "Outbound provider resolution attempts by provider and result.",
		}, []string{"provider", "result"}),
		bankListings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miles",
			Name:      "bank_listings_total",
			Help:      "Bank list fetches by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(c.verifications, c.providerCalls, c.bankListings)

	return c
}

func (c *Collector) ObserveVerification(outcome, source string) {
	c.verifications.WithLabelValues(outcome, source).Inc()
}

func (c *Collector) ObserveProviderCall(provider, result string) {
	c.providerCalls.WithLabelValues(provider, result).Inc()
}

func (c *Collector) ObserveBankListing(result string) {
	c.bankListings.WithLabelValues(result).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
