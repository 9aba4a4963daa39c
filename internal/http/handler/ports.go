package handler

import (
	"context"
	"net/http"

	"unifarm/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Authenticate(ctx context.Context, initData string) (string, error)
	GetAccount(ctx context.Context, userID int64) (core.Account, error)
	Transactions(ctx context.Context, userID int64, limit int) ([]core.TransactionRecord, error)
	ReferrerChain(ctx context.Context, userID int64) ([]core.ChainLink, error)
}

//counterfeiter:generate -o fake -fake-name BonusService . BonusService
type BonusService interface {
	CheckDailyBonusAvailability(ctx context.Context, userID int64) (bool, error)
	ClaimDailyBonus(ctx context.Context, userID int64) (core.DailyBonusResult, error)
	ProcessMilestoneBonus(ctx context.Context, userID int64) (core.MilestoneResult, error)
}

//counterfeiter:generate -o fake -fake-name FarmingService . FarmingService
type FarmingService interface {
	Deposit(ctx context.Context, userID int64, amount string) (core.FarmingState, error)
	Harvest(ctx context.Context, userID int64) (core.HarvestResult, error)
	DistributeFarmingRewards(ctx context.Context, userID int64, amount, harvestID string) (core.DistributionResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
