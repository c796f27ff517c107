package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes used as label values.
const (
	OK      = "ok"
	Failed  = "error"
	Skipped = "skipped"
)

var (
	registry = prometheus.NewRegistry()

	GeneratorCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropcast",
		Name:      "generator_calls_total",
		Help:      "Calls to the generative-language oracle by workflow and outcome.",
	}, []string{"workflow", "outcome"})

	RecommendationFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropcast",
		Name:      "recommendation_fallbacks_total",
		Help:      "Recommendation replies replaced by the fixed fallback set.",
	})

	WeatherLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropcast",
		Name:      "weather_lookups_total",
		Help:      "Best-effort weather enrichment attempts by outcome.",
	}, []string{"outcome"})

	RowsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropcast",
		Name:      "rows_dropped_total",
		Help:      "Rows whose persistence failed and were swallowed.",
	}, []string{"table"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		GeneratorCalls,
		RecommendationFallbacks,
		WeatherLookups,
		RowsDropped,
	)
}

func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
