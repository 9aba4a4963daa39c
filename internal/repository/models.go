package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUNI Currency = "UNI"
	CurrencyTON Currency = "TON"
)

func (c Currency) Valid() bool {
	return c == CurrencyUNI || c == CurrencyTON
}

type TransactionType string

const (
	TypeReferralBonus  TransactionType = "referral_bonus"
	TypeMilestoneBonus TransactionType = "milestone_bonus"
	TypeDailyBonus     TransactionType = "daily_bonus"
	TypeFarmingReward  TransactionType = "farming_reward"
	TypeDeposit        TransactionType = "deposit"
	TypeWithdrawal     TransactionType = "withdrawal"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeReferralBonus, TypeMilestoneBonus, TypeDailyBonus, TypeFarmingReward, TypeDeposit, TypeWithdrawal:
		return true
	}
	return false
}

// Debit reports whether the type takes value out of the balance.
func (t TransactionType) Debit() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

type TransactionStatus string

const (
	StatusConfirmed TransactionStatus = "confirmed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	return s == StatusConfirmed || s == StatusPending || s == StatusFailed
}

type User struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement"`
	TelegramID           int64           `gorm:"uniqueIndex;not null"`
	Username             string          `gorm:"size:64"`
	RefCode              string          `gorm:"size:32;uniqueIndex;not null"`
	ParentRefCode        *string         `gorm:"size:32;index"` // direct referrer, nil when none
	BalanceUNI           decimal.Decimal `gorm:"column:balance_uni;type:numeric(36,18);not null;default:0"`
	BalanceTON           decimal.Decimal `gorm:"column:balance_ton;type:numeric(36,18);not null;default:0"`
	UniDepositAmount     decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0"`
	UniFarmingLastUpdate *time.Time
	CheckinLastDate      *time.Time // UTC midnight of the last claimed day
	CheckinStreak        int        `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (u *User) Balance(c Currency) decimal.Decimal {
	if c == CurrencyTON {
		return u.BalanceTON
	}
	return u.BalanceUNI
}

func (u *User) setBalance(c Currency, v decimal.Decimal) {
	if c == CurrencyTON {
		u.BalanceTON = v
		return
	}
	u.BalanceUNI = v
}

type Transaction struct {
	ID             uint64            `gorm:"primaryKey;autoIncrement"`
	UserID         int64             `gorm:"not null;index"`
	Type           TransactionType   `gorm:"size:32;not null;index"`
	Currency       Currency          `gorm:"size:8;not null"`
	Amount         decimal.Decimal   `gorm:"type:numeric(36,18);not null"`
	SourceUserID   *int64            `gorm:"index"`
	ReferralLevel  *int
	Description    string            `gorm:"type:text"`
	Status         TransactionStatus `gorm:"size:16;not null"`
	IdempotencyKey *string           `gorm:"size:128;uniqueIndex"`
	CreatedAt      time.Time         `gorm:"index"`
}

// Entry describes one balance effect. Amount is always positive, the
// direction follows from Type. An empty Status records it as confirmed.
type Entry struct {
	UserID         int64
	Type           TransactionType
	Currency       Currency
	Amount         decimal.Decimal
	SourceUserID   *int64
	ReferralLevel  *int
	Description    string
	Status         TransactionStatus
	IdempotencyKey string
}

func (e Entry) status() TransactionStatus {
	if e.Status == "" {
		return StatusConfirmed
	}
	return e.Status
}

func (e Entry) record() Transaction {
	tx := Transaction{
		UserID:        e.UserID,
		Type:          e.Type,
		Currency:      e.Currency,
		Amount:        e.Amount,
		SourceUserID:  e.SourceUserID,
		ReferralLevel: e.ReferralLevel,
		Description:   e.Description,
		Status:        e.status(),
	}
	if e.IdempotencyKey != "" {
		key := e.IdempotencyKey
		tx.IdempotencyKey = &key
	}
	return tx
}
