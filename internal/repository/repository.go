package repository

import (
	"context"
	"errors"
	"fmt"

	"unifarm/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound        error = errors.New("user not found")
	ErrDuplicateUser       error = errors.New("user already exists")
	ErrDuplicateEntry      error = errors.New("ledger entry already recorded")
	ErrInsufficientBalance error = errors.New("insufficient balance")
	ErrInvalidEntry        error = errors.New("invalid ledger entry")
)

// MutateFunc inspects the locked user row and returns the ledger entry to
// commit, or nil to leave the row untouched. It may change non-balance fields
// of the user; balances only move through the returned entry.
type MutateFunc func(user *User) (*Entry, error)

// LedgerRepository is the balance store and transaction log.
type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (r *LedgerRepository) MigrateTables() error {
	err := r.db.MigrateModels(&User{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *LedgerRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.Create(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetUser(ctx context.Context, id int64) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *LedgerRepository) GetUserByRefCode(ctx context.Context, code string) (User, error) {
	return r.getUserBy(ctx, "ref_code", code)
}

func (r *LedgerRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (User, error) {
	return r.getUserBy(ctx, "telegram_id", telegramID)
}

func (r *LedgerRepository) getUserBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

// GetUsers loads the users with the given ids in one query. Unknown ids are
// skipped, order is not guaranteed.
func (r *LedgerRepository) GetUsers(ctx context.Context, ids []int64) ([]User, error) {
	users := []User{}
	if len(ids) == 0 {
		return users, nil
	}

	err := r.db.GetAllBy(ctx, "id", ids, &users)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}

// CountReferrals returns the number of users directly referred by refCode.
func (r *LedgerRepository) CountReferrals(ctx context.Context, refCode string) (int64, error) {
	count, err := r.db.Count(ctx, &User{}, "parent_ref_code", refCode)
	if err != nil {
		return 0, fmt.Errorf("count referrals: %w", err)
	}

	return count, nil
}

// FarmingUserIDs lists users holding a farming deposit.
func (r *LedgerRepository) FarmingUserIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	err := r.db.PluckWhere(ctx, &User{}, "id", &ids, "uni_deposit_amount > ?", 0)
	if err != nil {
		return nil, fmt.Errorf("list farming users: %w", err)
	}

	return ids, nil
}

func (r *LedgerRepository) HasEntry(ctx context.Context, idempotencyKey string) (bool, error) {
	count, err := r.db.Count(ctx, &Transaction{}, "idempotency_key", idempotencyKey)
	if err != nil {
		return false, fmt.Errorf("check ledger entry: %w", err)
	}

	return count > 0, nil
}

func (r *LedgerRepository) TransactionsByUser(ctx context.Context, userID int64, limit int) ([]Transaction, error) {
	transactions := []Transaction{}

	err := r.db.GetRecentBy(ctx, "user_id", userID, limit, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions by user: %w", err)
	}

	return transactions, nil
}

// Credit applies an unconditional entry to its user.
func (r *LedgerRepository) Credit(ctx context.Context, entry Entry) (User, error) {
	return r.Apply(ctx, entry.UserID, func(*User) (*Entry, error) {
		return &entry, nil
	})
}

// Apply runs fn against the user row locked for update and commits the
// returned entry together with the balance change in one transaction.
func (r *LedgerRepository) Apply(ctx context.Context, userID int64, fn MutateFunc) (User, error) {
	var result User

	err := r.db.InTx(ctx, func(tx *gorm.DB) error {
		var user User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}

		locked := user
		entry, err := fn(&user)
		if err != nil {
			return err
		}
		if entry == nil {
			result = locked
			return nil
		}

		if entry.UserID == 0 {
			entry.UserID = userID
		}
		if err := validateEntry(*entry, userID); err != nil {
			return err
		}

		if entry.IdempotencyKey != "" {
			var seen int64
			err := tx.Model(&Transaction{}).
				Where("idempotency_key = ?", entry.IdempotencyKey).
				Count(&seen).Error
			if err != nil {
				return fmt.Errorf("check idempotency key: %w", err)
			}
			if seen > 0 {
				return ErrDuplicateEntry
			}
		}

		user.BalanceUNI, user.BalanceTON = locked.BalanceUNI, locked.BalanceTON
		balance := user.Balance(entry.Currency)
		if entry.Type.Debit() {
			balance = balance.Sub(entry.Amount)
		} else {
			balance = balance.Add(entry.Amount)
		}
		if balance.IsNegative() {
			return ErrInsufficientBalance
		}
		user.setBalance(entry.Currency, balance)

		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("save user: %w", err)
		}

		record := entry.record()
		if err := tx.Create(&record).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return ErrDuplicateEntry
			}
			return fmt.Errorf("append transaction: %w", err)
		}

		result = user
		return nil
	})
	if err != nil {
		return User{}, err
	}

	return result, nil
}

func validateEntry(e Entry, userID int64) error {
	switch {
	case e.UserID != userID:
		return fmt.Errorf("%w: entry for user %d applied to user %d", ErrInvalidEntry, e.UserID, userID)
	case !e.Type.Valid():
		return fmt.Errorf("%w: type %q", ErrInvalidEntry, e.Type)
	case !e.Currency.Valid():
		return fmt.Errorf("%w: currency %q", ErrInvalidEntry, e.Currency)
	case !e.status().Valid():
		return fmt.Errorf("%w: status %q", ErrInvalidEntry, e.Status)
	case !e.Amount.IsPositive():
		return fmt.Errorf("%w: amount %s must be positive", ErrInvalidEntry, e.Amount)
	}
	return nil
}
