package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gift_bot"

const (
	OutcomePrimary  = "primary"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

//nolint:gochecknoglobals
var (
	Matches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_total",
		Help:      "Gift matches by outcome.",
	}, []string{"outcome"})

	Selections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selections_total",
		Help:      "Recorded selections.",
	})

	CatalogImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_imports_total",
		Help:      "Catalog imports by result.",
	}, []string{"result"})

	CatalogImportedGifts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_gifts",
		Help:      "Gifts loaded by the last successful import.",
	})

	BotUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bot_updates_total",
		Help:      "Handled telegram updates by kind.",
	}, []string{"kind"})
)
