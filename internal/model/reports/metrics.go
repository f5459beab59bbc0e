package reports

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramGenerationTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "finances",
		Subsystem: "reports",
		Name:      "histogram_generation_time_seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	},
	[]string{"error"},
)

func observeGeneration(elapsed time.Duration, failed bool) {
	histogramGenerationTime.
		WithLabelValues(strconv.FormatBool(failed)).
		Observe(elapsed.Seconds())
}
