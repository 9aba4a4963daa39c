package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"unifarm/internal/metrics"
	"unifarm/internal/repository"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const yieldPrecision = 8

var secondsPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Second))

type FarmingPolicy struct {
	DailyRate decimal.Decimal // share of the deposit paid per 24h
}

func NewFarmingPolicy(dailyRate string) (FarmingPolicy, error) {
	rate, err := ParsePositiveAmount(dailyRate)
	if err != nil {
		return FarmingPolicy{}, fmt.Errorf("%w: farming rate: %w", ErrInvalidConfig, err)
	}
	return FarmingPolicy{DailyRate: rate}, nil
}

// Accrued is the yield of deposit over elapsed, truncated to 8 decimals.
func (p FarmingPolicy) Accrued(deposit decimal.Decimal, elapsed time.Duration) decimal.Decimal {
	if elapsed <= 0 || !deposit.IsPositive() {
		return decimal.Zero
	}

	seconds := decimal.NewFromInt(int64(elapsed / time.Second))
	return deposit.Mul(p.DailyRate).Mul(seconds).Div(secondsPerDay).Truncate(yieldPrecision)
}

type FarmingService struct {
	logs        *zap.SugaredLogger
	ledger      Ledger
	distributor *RewardDistributor
	policy      FarmingPolicy
	clock       clockwork.Clock
}

func NewFarmingService(logger *zap.SugaredLogger, ledger Ledger, distributor *RewardDistributor, policy FarmingPolicy, clock clockwork.Clock) *FarmingService {
	return &FarmingService{
		logs:        logger,
		ledger:      ledger,
		distributor: distributor,
		policy:      policy,
		clock:       clock,
	}
}

// Deposit moves UNI from the balance into the farming deposit. Yield accrued
// on the previous deposit is harvested first.
func (s *FarmingService) Deposit(ctx context.Context, userID int64, amount string) (FarmingState, error) {
	value, err := ParsePositiveAmount(amount)
	if err != nil {
		return FarmingState{}, err
	}

	if _, err := s.Harvest(ctx, userID); err != nil {
		return FarmingState{}, err
	}

	now := s.clock.Now().UTC()
	user, err := s.ledger.Apply(ctx, userID, func(u *repository.User) (*repository.Entry, error) {
		u.UniDepositAmount = u.UniDepositAmount.Add(value)
		u.UniFarmingLastUpdate = &now

		return &repository.Entry{
			Type:        repository.TypeDeposit,
			Currency:    repository.CurrencyUNI,
			Amount:      value,
			Description: "UNI farming deposit",
		}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return FarmingState{}, ErrUserNotFound
		case errors.Is(err, repository.ErrInsufficientBalance):
			return FarmingState{}, ErrInsufficientFunds
		}
		return FarmingState{}, fmt.Errorf("apply deposit: %w", err)
	}

	s.logs.Infow("farming deposit accepted",
		"user_id", userID,
		"amount", value.String(),
		"deposit", user.UniDepositAmount.String())

	return toFarmingState(user), nil
}

// Harvest credits the yield accrued since the last update and distributes
// referral rewards on it. Nothing accrued yields an empty result.
func (s *FarmingService) Harvest(ctx context.Context, userID int64) (HarvestResult, error) {
	harvestID := uuid.NewString()
	now := s.clock.Now().UTC()
	accrued := decimal.Zero

	_, err := s.ledger.Apply(ctx, userID, func(u *repository.User) (*repository.Entry, error) {
		if u.UniFarmingLastUpdate == nil || !u.UniDepositAmount.IsPositive() {
			return nil, nil
		}

		// only whole seconds are paid, the rest carries over to the next harvest
		paid := now.Sub(*u.UniFarmingLastUpdate).Truncate(time.Second)
		accrued = s.policy.Accrued(u.UniDepositAmount, paid)
		if !accrued.IsPositive() {
			return nil, nil
		}
		next := u.UniFarmingLastUpdate.Add(paid)
		u.UniFarmingLastUpdate = &next

		return &repository.Entry{
			Type:           repository.TypeFarmingReward,
			Currency:       repository.CurrencyUNI,
			Amount:         accrued,
			Description:    fmt.Sprintf("UNI farming yield for %s", paid),
			IdempotencyKey: "harvest:" + harvestID,
		}, nil
	})
	if err != nil {
		metrics.HarvestsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		if errors.Is(err, repository.ErrUserNotFound) {
			return HarvestResult{Amount: "0"}, ErrUserNotFound
		}
		return HarvestResult{Amount: "0"}, fmt.Errorf("apply harvest: %w", err)
	}

	if !accrued.IsPositive() {
		metrics.HarvestsTotal.WithLabelValues(metrics.OutcomeNothing).Inc()
		return HarvestResult{Amount: "0"}, nil
	}
	metrics.HarvestsTotal.WithLabelValues(metrics.OutcomeCredited).Inc()

	result := HarvestResult{
		HarvestID: harvestID,
		Amount:    accrued.String(),
	}

	dist, err := s.distributor.OnIncome(ctx, SourceFarming, Income{
		UserID:    userID,
		Currency:  repository.CurrencyUNI,
		Amount:    accrued.String(),
		HarvestID: harvestID,
	})
	if err != nil {
		s.logs.Errorw("referral distribution after harvest failed",
			"user_id", userID,
			"harvest_id", harvestID,
			"error", err)
	}
	result.Distribution = dist

	return result, nil
}

// DistributeFarmingRewards pays commissions for a harvest finalized elsewhere.
func (s *FarmingService) DistributeFarmingRewards(ctx context.Context, userID int64, amount, harvestID string) (DistributionResult, error) {
	return s.distributor.OnIncome(ctx, SourceFarming, Income{
		UserID:    userID,
		Currency:  repository.CurrencyUNI,
		Amount:    amount,
		HarvestID: harvestID,
	})
}

func toFarmingState(u repository.User) FarmingState {
	return FarmingState{
		Deposit:    u.UniDepositAmount.String(),
		BalanceUNI: u.BalanceUNI.String(),
		LastUpdate: u.UniFarmingLastUpdate,
	}
}
