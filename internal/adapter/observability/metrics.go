package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validations_total",
			Help: "Total number of validation passes by document and outcome",
		},
		[]string{"document", "outcome"},
	)
	ValidationBlocksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_blocks_total",
			Help: "Total number of blocked requests by error kind",
		},
		[]string{"kind"},
	)
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generations_total",
			Help: "Total number of question-generation requests by outcome",
		},
		[]string{"outcome"},
	)
	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Question generation duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// Score distributions
	RelevanceScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "validation_relevance_score",
			Help:    "Distribution of job-description relevance scores ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	QualityScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "validation_quality_score",
			Help:    "Distribution of job-description quality scores ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	ResumeScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "validation_resume_score",
			Help:    "Distribution of resume overall scores ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ValidationsTotal)
	prometheus.MustRegister(ValidationBlocksTotal)
	prometheus.MustRegister(GenerationsTotal)
	prometheus.MustRegister(GenerationDuration)
	prometheus.MustRegister(RelevanceScoreHistogram)
	prometheus.MustRegister(QualityScoreHistogram)
	prometheus.MustRegister(ResumeScoreHistogram)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			// fallback when route pattern is unavailable
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

// ObserveValidation records the outcome of one validation pass.
func ObserveValidation(document string, blocked bool, blockKind string) {
	outcome := "pass"
	if blocked {
		outcome = "block"
		if blockKind != "" {
			ValidationBlocksTotal.WithLabelValues(blockKind).Inc()
		}
	}
	ValidationsTotal.WithLabelValues(document, outcome).Inc()
}

// ObserveScores records score distributions from one validation pass. Scores
// outside [0,100] are dropped rather than skewing the histograms.
func ObserveScores(relevance, quality, resume int) {
	if relevance >= 0 && relevance <= 100 {
		RelevanceScoreHistogram.Observe(float64(relevance))
	}
	if quality >= 0 && quality <= 100 {
		QualityScoreHistogram.Observe(float64(quality))
	}
	if resume >= 0 && resume <= 100 {
		ResumeScoreHistogram.Observe(float64(resume))
	}
}

// ObserveGeneration records one generation attempt and its duration.
func ObserveGeneration(outcome string, dur time.Duration) {
	GenerationsTotal.WithLabelValues(outcome).Inc()
	GenerationDuration.Observe(dur.Seconds())
}
