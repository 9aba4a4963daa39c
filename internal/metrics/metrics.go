package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeCredited       = "credited"
	OutcomeDuplicate      = "duplicate"
	OutcomeFailed         = "failed"
	OutcomeAlreadyClaimed = "already_claimed"
	OutcomeNothing        = "nothing"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unifarm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unifarm_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReferralCommissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unifarm_referral_commissions_total",
			Help: "Referral commissions processed per level and outcome",
		},
		[]string{"level", "outcome"},
	)

	DistributionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unifarm_referral_distributions_total",
			Help: "Referral distributions by income source and outcome",
		},
		[]string{"source", "outcome"},
	)

	DailyBonusClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unifarm_daily_bonus_claims_total",
			Help: "Daily bonus claim attempts by outcome",
		},
		[]string{"outcome"},
	)

	MilestoneBonusesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unifarm_milestone_bonuses_total",
			Help: "Milestone bonuses credited per referral threshold",
		},
		[]string{"threshold"},
	)

	HarvestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unifarm_farming_harvests_total",
			Help: "Farming harvests by outcome",
		},
		[]string{"outcome"},
	)

	HarvestRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "unifarm_harvest_run_duration_seconds",
			Help:    "Duration of scheduled harvest runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
	)
)

// Middleware returns a chi middleware that records HTTP metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := strconv.Itoa(ww.Status())
		HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func RecordCommission(level int, outcome string) {
	ReferralCommissionsTotal.WithLabelValues(strconv.Itoa(level), outcome).Inc()
}
