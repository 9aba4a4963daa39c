package handler

import (
	"net/http"

	"unifarm/internal/http/handler/middleware"
	"unifarm/internal/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Tokens        middleware.TokenValidator
	Limiter       *middleware.RateLimiter
	InternalToken string
}

// NewRouter mounts every route of the API. Claim endpoints sit behind the
// per-user rate limiter, the distribution hook behind the internal token.
func NewRouter(logger *zap.SugaredLogger, h *FarmHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.HandleFunc(Health, h.HandleHealth)
	r.Handle(Metrics, promhttp.Handler())

	r.HandleFunc(Authenticate, h.HandleAuthenticate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(logger, cfg.Tokens))

		r.HandleFunc(GetAccount, h.HandleGetAccount)
		r.HandleFunc(GetTransactions, h.HandleGetTransactions)
		r.HandleFunc(GetReferrals, h.HandleGetReferrals)
		r.HandleFunc(GetDailyBonus, h.HandleGetDailyBonus)
		r.HandleFunc(FarmingDeposit, h.HandleDeposit)

		r.Group(func(r chi.Router) {
			if cfg.Limiter != nil {
				r.Use(cfg.Limiter.Middleware)
			}
			r.HandleFunc(ClaimDailyBonus, h.HandleClaimDailyBonus)
			r.HandleFunc(ClaimMilestones, h.HandleClaimMilestones)
			r.HandleFunc(FarmingHarvest, h.HandleHarvest)
		})
	})

	r.With(middleware.InternalToken(cfg.InternalToken)).
		HandleFunc(DistributeRewards, h.HandleDistribute)

	return r
}
