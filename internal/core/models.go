package core

import (
	"time"

	"unifarm/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// ChainLink is one ancestor in a referrer chain, level 1 being the direct referrer.
type ChainLink struct {
	UserID   int64  `json:"userId"`
	Level    int    `json:"level"`
	Username string `json:"username,omitempty"`
}

type Commission struct {
	UserID int64
	Level  int
	Amount decimal.Decimal
}

// CreditResult is the outcome of paying one ancestor.
type CreditResult struct {
	UserID   int64  `json:"userId"`
	Level    int    `json:"level"`
	Amount   string `json:"amount"`
	Credited bool   `json:"credited"`
	Skipped  bool   `json:"skipped,omitempty"` // already paid for this harvest
	Error    string `json:"error,omitempty"`
	Err      error  `json:"-"`
}

type DistributionResult struct {
	SourceUserID int64          `json:"sourceUserId"`
	Amount       string         `json:"amount"`
	Success      bool           `json:"success"`
	Credits      []CreditResult `json:"credits"`
}

func (r DistributionResult) Failed() []CreditResult {
	failed := []CreditResult{}
	for _, c := range r.Credits {
		if c.Err != nil {
			failed = append(failed, c)
		}
	}
	return failed
}

// Err folds the per-ancestor failures into one error, nil when every ancestor was paid.
func (r DistributionResult) Err() error {
	var err error
	for _, c := range r.Failed() {
		err = multierr.Append(err, c.Err)
	}
	return err
}

type DailyBonusResult struct {
	Amount  string `json:"amount"`
	Claimed bool   `json:"claimed"`
	Streak  int    `json:"streak"`
}

type MilestoneResult struct {
	Amount        string  `json:"amount"`
	Thresholds    []int64 `json:"thresholds"`
	ReferralCount int64   `json:"referralCount"`
}

type HarvestResult struct {
	HarvestID    string             `json:"harvestId,omitempty"`
	Amount       string             `json:"amount"`
	Distribution DistributionResult `json:"distribution"`
}

type FarmingState struct {
	Deposit    string     `json:"deposit"`
	BalanceUNI string     `json:"balanceUni"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
}

type Account struct {
	ID              int64   `json:"id"`
	TelegramID      int64   `json:"telegramId"`
	Username        string  `json:"username"`
	RefCode         string  `json:"refCode"`
	ParentRefCode   *string `json:"parentRefCode,omitempty"`
	BalanceUNI      string  `json:"balanceUni"`
	BalanceTON      string  `json:"balanceTon"`
	UniDeposit      string  `json:"uniDeposit"`
	CheckinStreak   int     `json:"checkinStreak"`
	CheckinLastDate string  `json:"checkinLastDate,omitempty"`
	DirectReferrals int64   `json:"directReferrals"`
}

type TransactionRecord struct {
	ID            uint64    `json:"id"`
	Type          string    `json:"type"`
	Currency      string    `json:"currency"`
	Amount        string    `json:"amount"`
	SourceUserID  *int64    `json:"sourceUserId,omitempty"`
	ReferralLevel *int      `json:"referralLevel,omitempty"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toTransactionRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Currency:      string(tx.Currency),
		Amount:        tx.Amount.String(),
		SourceUserID:  tx.SourceUserID,
		ReferralLevel: tx.ReferralLevel,
		Description:   tx.Description,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
	}
}
