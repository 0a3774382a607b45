// Package metrics holds Prometheus instruments that are used across the
// portal core.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SiteResolveTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_resolve_total",
			Help: "Cumulative number of successful site resolutions.",
		})

	SiteResolveNotFoundTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_resolve_not_found_total",
			Help: "Cumulative number of resolutions that matched no active site.",
		})

	SiteResolveErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_resolve_errors_total",
			Help: "Cumulative number of resolutions aborted by infrastructure failures.",
		})

	LegacyRedirectTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "legacy_redirect_total",
			Help: "Cumulative number of legacy paths rewritten to site-scoped URLs.",
		})

	PaginationClampedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_clamped_total",
			Help: "Cumulative number of listing requests with a clamped limit.",
		})

	PaginationRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_rejected_total",
			Help: "Cumulative number of listing requests beyond the offset ceiling.",
		})
)

func init() {
	prometheus.MustRegister(
		SiteResolveTotal,
		SiteResolveNotFoundTotal,
		SiteResolveErrorsTotal,
		LegacyRedirectTotal,
		PaginationClampedTotal,
		PaginationRejectedTotal,
	)
}
