package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"unifarm/internal/metrics"
	"unifarm/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Milestone struct {
	Threshold int64
	Bonus     decimal.Decimal
}

// MilestoneTable is sorted by threshold, ascending.
type MilestoneTable []Milestone

// ParseMilestoneTable reads "threshold:bonus" pairs separated by commas, e.g. "5:500,10:1000".
func ParseMilestoneTable(raw string) (MilestoneTable, error) {
	table := MilestoneTable{}
	seen := map[int64]struct{}{}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		thresholdRaw, bonusRaw, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: milestone %q is not threshold:bonus", ErrInvalidConfig, pair)
		}

		threshold, err := strconv.ParseInt(strings.TrimSpace(thresholdRaw), 10, 64)
		if err != nil || threshold <= 0 {
			return nil, fmt.Errorf("%w: milestone threshold %q", ErrInvalidConfig, thresholdRaw)
		}
		if _, dup := seen[threshold]; dup {
			return nil, fmt.Errorf("%w: milestone threshold %d listed twice", ErrInvalidConfig, threshold)
		}
		seen[threshold] = struct{}{}

		bonus, err := ParsePositiveAmount(bonusRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: milestone %d bonus: %w", ErrInvalidConfig, threshold, err)
		}

		table = append(table, Milestone{Threshold: threshold, Bonus: bonus})
	}

	sort.Slice(table, func(i, j int) bool {
		return table[i].Threshold < table[j].Threshold
	})
	return table, nil
}

func (t MilestoneTable) Reached(referrals int64) []Milestone {
	reached := []Milestone{}
	for _, m := range t {
		if referrals < m.Threshold {
			break
		}
		reached = append(reached, m)
	}
	return reached
}

type MilestoneService struct {
	logs   *zap.SugaredLogger
	ledger Ledger
	table  MilestoneTable
}

func NewMilestoneService(logger *zap.SugaredLogger, ledger Ledger, table MilestoneTable) *MilestoneService {
	return &MilestoneService{
		logs:   logger,
		ledger: ledger,
		table:  table,
	}
}

func milestoneKey(userID, threshold int64) string {
	return fmt.Sprintf("milestone:%d:%d", userID, threshold)
}

// ProcessMilestoneBonus credits every referral milestone the user has reached
// and not been paid for yet. Each threshold pays at most once.
func (s *MilestoneService) ProcessMilestoneBonus(ctx context.Context, userID int64) (MilestoneResult, error) {
	result := MilestoneResult{Amount: "0", Thresholds: []int64{}}

	user, err := s.ledger.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return result, ErrUserNotFound
		}
		return result, fmt.Errorf("get user: %w", err)
	}

	count, err := s.ledger.CountReferrals(ctx, user.RefCode)
	if err != nil {
		return result, fmt.Errorf("count referrals: %w", err)
	}
	result.ReferralCount = count

	total := decimal.Zero
	for _, m := range s.table.Reached(count) {
		key := milestoneKey(userID, m.Threshold)

		paid, err := s.ledger.HasEntry(ctx, key)
		if err != nil {
			return withTotal(result, total), fmt.Errorf("check milestone %d: %w", m.Threshold, err)
		}
		if paid {
			continue
		}

		_, err = s.ledger.Credit(ctx, repository.Entry{
			UserID:         userID,
			Type:           repository.TypeMilestoneBonus,
			Currency:       repository.CurrencyUNI,
			Amount:         m.Bonus,
			Description:    fmt.Sprintf("Milestone bonus for %d referrals", m.Threshold),
			IdempotencyKey: key,
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEntry) {
				continue
			}
			s.logs.Errorw("failed to credit milestone bonus",
				"user_id", userID,
				"threshold", m.Threshold,
				"error", err)
			return withTotal(result, total), fmt.Errorf("credit milestone %d: %w", m.Threshold, err)
		}

		metrics.MilestoneBonusesTotal.WithLabelValues(strconv.FormatInt(m.Threshold, 10)).Inc()
		s.logs.Infow("milestone bonus credited",
			"user_id", userID,
			"threshold", m.Threshold,
			"bonus", m.Bonus.String())

		total = total.Add(m.Bonus)
		result.Thresholds = append(result.Thresholds, m.Threshold)
	}

	return withTotal(result, total), nil
}

func withTotal(result MilestoneResult, total decimal.Decimal) MilestoneResult {
	result.Amount = total.String()
	return result
}
