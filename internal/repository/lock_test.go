package repository_test

import (
	"context"
	"database/sql"
	"errors"

	"unifarm/internal/db"
	"unifarm/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const lockUserQuery = `^SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT \$2 FOR UPDATE$`

var _ = Describe("LedgerRepository on postgres", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		repo   *repository.LedgerRepository
		ctx    context.Context
	)

	userRow := func(balance string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "telegram_id", "ref_code", "balance_uni", "balance_ton", "uni_deposit_amount", "checkin_streak"}).
			AddRow(1, 1001, "ref_a", balance, "0", "0", 0)
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		gormDB, err := gorm.Open(postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		}), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewLedgerRepository(&db.GormDB{DB: gormDB})
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Credit", func() {
		When("the entry commits", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockUserQuery).
					WithArgs(int64(1), 1).
					WillReturnRows(userRow("10"))
				mock.ExpectExec(`^UPDATE "users" SET .* WHERE "id" = \$\d+$`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`^INSERT INTO "transactions" .* RETURNING "id"$`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should lock the row, update the balance and append the record in one transaction", func() {
				u, err := repo.Credit(ctx, repository.Entry{
					UserID:   1,
					Type:     repository.TypeReferralBonus,
					Currency: repository.CurrencyUNI,
					Amount:   decimal.NewFromInt(5),
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(u.BalanceUNI.Equal(decimal.NewFromInt(15))).To(BeTrue())
			})
		})

		When("the idempotency key is taken by a concurrent commit", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockUserQuery).
					WithArgs(int64(1), 1).
					WillReturnRows(userRow("10"))
				mock.ExpectQuery(`^SELECT count\(\*\) FROM "transactions" WHERE idempotency_key = \$1`).
					WithArgs("harvest:h-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`^UPDATE "users" SET .* WHERE "id" = \$\d+$`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`^INSERT INTO "transactions" .* RETURNING "id"$`).
					WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_transactions_idempotency_key"`))
				mock.ExpectRollback()
			})

			It("should roll the balance change back", func() {
				_, err := repo.Credit(ctx, repository.Entry{
					UserID:         1,
					Type:           repository.TypeFarmingReward,
					Currency:       repository.CurrencyUNI,
					Amount:         decimal.NewFromInt(5),
					IdempotencyKey: "harvest:h-1",
				})
				Expect(err).To(MatchError(repository.ErrDuplicateEntry))
			})
		})
	})

	Describe("Apply", func() {
		When("the locked balance cannot cover a debit", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockUserQuery).
					WithArgs(int64(1), 1).
					WillReturnRows(userRow("3"))
				mock.ExpectRollback()
			})

			It("should roll back without writing", func() {
				_, err := repo.Apply(ctx, 1, func(u *repository.User) (*repository.Entry, error) {
					return &repository.Entry{
						Type:     repository.TypeDeposit,
						Currency: repository.CurrencyUNI,
						Amount:   decimal.NewFromInt(4),
					}, nil
				})
				Expect(err).To(MatchError(repository.ErrInsufficientBalance))
			})
		})

		When("the user row does not exist", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockUserQuery).
					WithArgs(int64(42), 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			})

			It("should return ErrUserNotFound", func() {
				_, err := repo.Credit(ctx, repository.Entry{
					UserID:   42,
					Type:     repository.TypeDailyBonus,
					Currency: repository.CurrencyUNI,
					Amount:   decimal.NewFromInt(1),
				})
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})
})
