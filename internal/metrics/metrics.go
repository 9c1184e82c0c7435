// Package metrics holds the prometheus collectors of the theme module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "default_theme"

// Save outcomes.
const (
	ResultSaved   = "saved"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	// SettingsSaves counts admin settings saves by result.
	SettingsSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_saves_total",
		Help:      "Theme settings save requests by result.",
	}, []string{"result"})

	// HomepageRenders counts storefront homepage renders.
	HomepageRenders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "homepage_renders_total",
		Help:      "Storefront homepages rendered.",
	})

	// SettingsResolveDuration observes how long resolving a store's settings takes.
	SettingsResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "settings_resolve_seconds",
		Help:      "Time spent resolving effective theme settings.",
		Buckets:   prometheus.DefBuckets,
	})
)
