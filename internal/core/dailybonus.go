package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"unifarm/internal/metrics"
	"unifarm/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DailyBonusPolicy prices a claim: Base plus Increment per consecutive day
// after the first, the streak part never exceeding Cap.
type DailyBonusPolicy struct {
	Base      decimal.Decimal
	Increment decimal.Decimal
	Cap       decimal.Decimal
}

func NewDailyBonusPolicy(base, increment, cap string) (DailyBonusPolicy, error) {
	b, err := ParsePositiveAmount(base)
	if err != nil {
		return DailyBonusPolicy{}, fmt.Errorf("%w: daily base: %w", ErrInvalidConfig, err)
	}
	i, err := ParseAmount(increment)
	if err != nil {
		return DailyBonusPolicy{}, fmt.Errorf("%w: daily increment: %w", ErrInvalidConfig, err)
	}
	c, err := ParseAmount(cap)
	if err != nil {
		return DailyBonusPolicy{}, fmt.Errorf("%w: daily cap: %w", ErrInvalidConfig, err)
	}

	return DailyBonusPolicy{Base: b, Increment: i, Cap: c}, nil
}

func (p DailyBonusPolicy) Amount(streak int) decimal.Decimal {
	if streak < 1 {
		streak = 1
	}

	bonus := p.Increment.Mul(decimal.NewFromInt(int64(streak - 1)))
	if bonus.GreaterThan(p.Cap) {
		bonus = p.Cap
	}
	return p.Base.Add(bonus)
}

type StreakState int

const (
	NeverClaimed StreakState = iota
	ClaimedToday
	StreakActive
	StreakBroken
)

func (s StreakState) String() string {
	switch s {
	case NeverClaimed:
		return "never_claimed"
	case ClaimedToday:
		return "claimed_today"
	case StreakActive:
		return "streak_active"
	default:
		return "streak_broken"
	}
}

// StreakStateOf compares the last claimed day with today in UTC. A last day
// after today (clock moved back) counts as claimed.
func StreakStateOf(lastClaim *time.Time, today time.Time) StreakState {
	if lastClaim == nil {
		return NeverClaimed
	}

	last := dayOf(*lastClaim)
	today = dayOf(today)
	switch {
	case !last.Before(today):
		return ClaimedToday
	case last.AddDate(0, 0, 1).Equal(today):
		return StreakActive
	default:
		return StreakBroken
	}
}

// NextStreak returns the streak a claim today would produce, false when today is already claimed.
func NextStreak(lastClaim *time.Time, streak int, today time.Time) (int, bool) {
	switch StreakStateOf(lastClaim, today) {
	case ClaimedToday:
		return streak, false
	case StreakActive:
		return streak + 1, true
	default:
		return 1, true
	}
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type DailyBonusService struct {
	logs   *zap.SugaredLogger
	ledger Ledger
	policy DailyBonusPolicy
	clock  clockwork.Clock
}

func NewDailyBonusService(logger *zap.SugaredLogger, ledger Ledger, policy DailyBonusPolicy, clock clockwork.Clock) *DailyBonusService {
	return &DailyBonusService{
		logs:   logger,
		ledger: ledger,
		policy: policy,
		clock:  clock,
	}
}

func (s *DailyBonusService) CheckDailyBonusAvailability(ctx context.Context, userID int64) (bool, error) {
	user, err := s.ledger.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("get user: %w", err)
	}

	_, ok := NextStreak(user.CheckinLastDate, user.CheckinStreak, s.clock.Now())
	return ok, nil
}

// ClaimDailyBonus credits today's bonus. The streak precondition is checked
// on the locked row, so concurrent claims pay at most once per day.
func (s *DailyBonusService) ClaimDailyBonus(ctx context.Context, userID int64) (DailyBonusResult, error) {
	today := dayOf(s.clock.Now())
	var claim DailyBonusResult

	user, err := s.ledger.Apply(ctx, userID, func(u *repository.User) (*repository.Entry, error) {
		streak, ok := NextStreak(u.CheckinLastDate, u.CheckinStreak, today)
		if !ok {
			return nil, nil
		}

		amount := s.policy.Amount(streak)
		u.CheckinLastDate = &today
		u.CheckinStreak = streak
		claim = DailyBonusResult{Amount: amount.String(), Claimed: true, Streak: streak}

		return &repository.Entry{
			Type:           repository.TypeDailyBonus,
			Currency:       repository.CurrencyUNI,
			Amount:         amount,
			Description:    fmt.Sprintf("Daily bonus, day %d of streak", streak),
			IdempotencyKey: fmt.Sprintf("daily:%d:%s", userID, today.Format(time.DateOnly)),
		}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEntry):
			metrics.DailyBonusClaimsTotal.WithLabelValues(metrics.OutcomeAlreadyClaimed).Inc()
			return DailyBonusResult{Amount: "0"}, nil
		case errors.Is(err, repository.ErrUserNotFound):
			err = ErrUserNotFound
		default:
			err = fmt.Errorf("apply daily bonus: %w", err)
		}
		metrics.DailyBonusClaimsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.logs.Errorw("daily bonus claim failed", "user_id", userID, "error", err)
		return DailyBonusResult{Amount: "0"}, err
	}

	if !claim.Claimed {
		metrics.DailyBonusClaimsTotal.WithLabelValues(metrics.OutcomeAlreadyClaimed).Inc()
		return DailyBonusResult{Amount: "0", Streak: user.CheckinStreak}, nil
	}

	metrics.DailyBonusClaimsTotal.WithLabelValues(metrics.OutcomeCredited).Inc()
	s.logs.Infow("daily bonus claimed",
		"user_id", userID,
		"streak", claim.Streak,
		"amount", claim.Amount)

	return claim, nil
}
