package core

import (
	"context"
	"errors"
	"fmt"

	"unifarm/internal/metrics"
	"unifarm/internal/repository"

	"go.uber.org/zap"
)

// IncomeSource names where a user's income came from.
type IncomeSource string

const (
	SourceFarming    IncomeSource = "farming"
	SourceMission    IncomeSource = "mission"
	SourceBoost      IncomeSource = "boost"
	SourceDailyBonus IncomeSource = "daily_bonus"
	SourceMilestone  IncomeSource = "milestone"
	SourceReferral   IncomeSource = "referral"
)

// EarnsReferralCommission is true only for farming yield.
func (s IncomeSource) EarnsReferralCommission() bool {
	return s == SourceFarming
}

// Income is an amount a user earned. HarvestID, when set, makes the
// commissions paid for it idempotent.
type Income struct {
	UserID    int64
	Currency  repository.Currency
	Amount    string
	HarvestID string
}

type RewardDistributor struct {
	logs     *zap.SugaredLogger
	ledger   Ledger
	resolver *ReferralResolver
}

func NewRewardDistributor(logger *zap.SugaredLogger, ledger Ledger, resolver *ReferralResolver) *RewardDistributor {
	return &RewardDistributor{
		logs:     logger,
		ledger:   ledger,
		resolver: resolver,
	}
}

// DistributeFarmingRewards pays referral commissions on a UNI farming reward.
func (d *RewardDistributor) DistributeFarmingRewards(ctx context.Context, userID int64, farmingReward string) (DistributionResult, error) {
	return d.OnIncome(ctx, SourceFarming, Income{
		UserID:   userID,
		Currency: repository.CurrencyUNI,
		Amount:   farmingReward,
	})
}

// OnIncome is called for every income event. Sources other than farming
// never pay commissions.
func (d *RewardDistributor) OnIncome(ctx context.Context, source IncomeSource, income Income) (DistributionResult, error) {
	if !source.EarnsReferralCommission() {
		d.logs.Debugw("income source does not distribute referral rewards",
			"user_id", income.UserID,
			"source", source)
		metrics.DistributionsTotal.WithLabelValues(string(source), metrics.OutcomeNothing).Inc()
		return DistributionResult{
			SourceUserID: income.UserID,
			Amount:       "0",
			Success:      true,
			Credits:      []CreditResult{},
		}, nil
	}

	result, err := d.distribute(ctx, income)
	outcome := metrics.OutcomeCredited
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	metrics.DistributionsTotal.WithLabelValues(string(source), outcome).Inc()
	return result, err
}

func (d *RewardDistributor) distribute(ctx context.Context, income Income) (DistributionResult, error) {
	result := DistributionResult{
		SourceUserID: income.UserID,
		Amount:       income.Amount,
		Credits:      []CreditResult{},
	}

	amount, err := ParseAmount(income.Amount)
	if err != nil {
		return result, err
	}

	currency := income.Currency
	if currency == "" {
		currency = repository.CurrencyUNI
	}
	if !currency.Valid() {
		return result, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	if _, err := d.ledger.GetUser(ctx, income.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return result, ErrUserNotFound
		}
		return result, fmt.Errorf("get source user: %w", err)
	}

	chain, err := d.resolver.BuildReferrerChain(ctx, income.UserID)
	if err != nil {
		d.logs.Errorw("failed to resolve referrer chain",
			"user_id", income.UserID,
			"error", err)
		return result, fmt.Errorf("build referrer chain: %w", err)
	}

	result.Success = true
	if len(chain) == 0 || amount.IsZero() {
		return result, nil
	}

	commissions, err := CalculateReferralCommissions(amount.String(), chain)
	if err != nil {
		result.Success = false
		return result, fmt.Errorf("calculate commissions: %w", err)
	}

	for _, c := range commissions {
		credit := CreditResult{
			UserID: c.UserID,
			Level:  c.Level,
			Amount: c.Amount.String(),
		}

		source := income.UserID
		level := c.Level
		entry := repository.Entry{
			UserID:        c.UserID,
			Type:          repository.TypeReferralBonus,
			Currency:      currency,
			Amount:        c.Amount,
			SourceUserID:  &source,
			ReferralLevel: &level,
			Description:   fmt.Sprintf("Referral reward level %d from user %d farming", level, source),
		}
		if income.HarvestID != "" {
			entry.IdempotencyKey = fmt.Sprintf("referral:%s:%d", income.HarvestID, c.UserID)
		}

		_, err := d.ledger.Credit(ctx, entry)
		switch {
		case err == nil:
			credit.Credited = true
			metrics.RecordCommission(level, metrics.OutcomeCredited)
		case errors.Is(err, repository.ErrDuplicateEntry):
			credit.Skipped = true
			metrics.RecordCommission(level, metrics.OutcomeDuplicate)
			d.logs.Infow("referral reward already paid for harvest",
				"ancestor_id", c.UserID,
				"harvest_id", income.HarvestID)
		default:
			credit.Err = fmt.Errorf("credit ancestor %d at level %d: %w", c.UserID, level, err)
			credit.Error = err.Error()
			metrics.RecordCommission(level, metrics.OutcomeFailed)
			d.logs.Errorw("failed to credit referral reward",
				"ancestor_id", c.UserID,
				"level", level,
				"source_user_id", source,
				"amount", credit.Amount,
				"error", err)
		}

		result.Credits = append(result.Credits, credit)
	}

	d.logs.Infow("referral rewards distributed",
		"user_id", income.UserID,
		"amount", result.Amount,
		"ancestors", len(result.Credits),
		"failed", len(result.Failed()))

	return result, nil
}
