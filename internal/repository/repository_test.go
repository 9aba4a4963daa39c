package repository_test

import (
	"context"
	"fmt"
	"sync"

	"unifarm/internal/db"
	"unifarm/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

var _ = Describe("LedgerRepository", func() {
	var (
		repo   *repository.LedgerRepository
		testDB *db.GormDB
		ctx    context.Context
	)

	newUser := func(id int64, code string, parent *string) repository.User {
		u := repository.User{
			ID:            id,
			TelegramID:    1000 + id,
			Username:      fmt.Sprintf("user%d", id),
			RefCode:       code,
			ParentRefCode: parent,
		}
		Expect(repo.CreateUser(ctx, &u)).To(Succeed())
		return u
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		testDB, err = db.NewSQLiteDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewLedgerRepository(testDB)
		Expect(repo.MigrateTables()).To(Succeed())
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	Describe("users", func() {
		BeforeEach(func() {
			newUser(1, "ref_a", nil)
			newUser(2, "ref_b", strPtr("ref_a"))
			newUser(3, "ref_c", strPtr("ref_a"))
		})

		It("should look users up by id, referral code and telegram id", func() {
			u, err := repo.GetUser(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.RefCode).To(Equal("ref_b"))
			Expect(*u.ParentRefCode).To(Equal("ref_a"))
			Expect(u.BalanceUNI.IsZero()).To(BeTrue())

			u, err = repo.GetUserByRefCode(ctx, "ref_c")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(int64(3)))

			u, err = repo.GetUserByTelegramID(ctx, 1001)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(int64(1)))
		})

		It("should load several users in one call", func() {
			users, err := repo.GetUsers(ctx, []int64{3, 1, 99})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))

			codes := []string{users[0].RefCode, users[1].RefCode}
			Expect(codes).To(ConsistOf("ref_a", "ref_c"))

			users, err = repo.GetUsers(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
		})

		It("should return ErrUserNotFound for unknown users", func() {
			_, err := repo.GetUser(ctx, 99)
			Expect(err).To(MatchError(repository.ErrUserNotFound))

			_, err = repo.GetUserByRefCode(ctx, "nope")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})

		It("should reject a duplicate referral code", func() {
			dup := repository.User{TelegramID: 5000, RefCode: "ref_a"}
			Expect(repo.CreateUser(ctx, &dup)).To(MatchError(repository.ErrDuplicateUser))
		})

		It("should count direct referrals", func() {
			count, err := repo.CountReferrals(ctx, "ref_a")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))

			count, err = repo.CountReferrals(ctx, "ref_b")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})

	Describe("Credit", func() {
		BeforeEach(func() {
			newUser(1, "ref_a", nil)
		})

		It("should increase the balance and append one confirmed record", func() {
			source := int64(7)
			level := 1
			u, err := repo.Credit(ctx, repository.Entry{
				UserID:        1,
				Type:          repository.TypeReferralBonus,
				Currency:      repository.CurrencyUNI,
				Amount:        decimal.RequireFromString("12.5"),
				SourceUserID:  &source,
				ReferralLevel: &level,
				Description:   "level 1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.BalanceUNI.String()).To(Equal("12.5"))

			stored, err := repo.GetUser(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.BalanceUNI.Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
			Expect(stored.BalanceTON.IsZero()).To(BeTrue())

			txs, err := repo.TransactionsByUser(ctx, 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(1))
			Expect(txs[0].Type).To(Equal(repository.TypeReferralBonus))
			Expect(txs[0].Status).To(Equal(repository.StatusConfirmed))
			Expect(*txs[0].SourceUserID).To(Equal(source))
			Expect(*txs[0].ReferralLevel).To(Equal(1))
		})

		It("should credit the requested currency only", func() {
			_, err := repo.Credit(ctx, repository.Entry{
				UserID:   1,
				Type:     repository.TypeFarmingReward,
				Currency: repository.CurrencyTON,
				Amount:   decimal.NewFromInt(3),
			})
			Expect(err).NotTo(HaveOccurred())

			stored, _ := repo.GetUser(ctx, 1)
			Expect(stored.BalanceTON.Equal(decimal.NewFromInt(3))).To(BeTrue())
			Expect(stored.BalanceUNI.IsZero()).To(BeTrue())
		})

		It("should refuse a second entry with the same idempotency key", func() {
			entry := repository.Entry{
				UserID:         1,
				Type:           repository.TypeMilestoneBonus,
				Currency:       repository.CurrencyUNI,
				Amount:         decimal.NewFromInt(500),
				IdempotencyKey: "milestone:1:5",
			}
			_, err := repo.Credit(ctx, entry)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.Credit(ctx, entry)
			Expect(err).To(MatchError(repository.ErrDuplicateEntry))

			seen, err := repo.HasEntry(ctx, "milestone:1:5")
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(BeTrue())

			stored, _ := repo.GetUser(ctx, 1)
			Expect(stored.BalanceUNI.Equal(decimal.NewFromInt(500))).To(BeTrue())
		})

		It("should reject invalid entries without touching the balance", func() {
			_, err := repo.Credit(ctx, repository.Entry{
				UserID:   1,
				Type:     repository.TypeDailyBonus,
				Currency: repository.CurrencyUNI,
				Amount:   decimal.Zero,
			})
			Expect(err).To(MatchError(repository.ErrInvalidEntry))

			_, err = repo.Credit(ctx, repository.Entry{
				UserID:   1,
				Type:     repository.TransactionType("mission_reward"),
				Currency: repository.CurrencyUNI,
				Amount:   decimal.NewFromInt(1),
			})
			Expect(err).To(MatchError(repository.ErrInvalidEntry))

			_, err = repo.Credit(ctx, repository.Entry{
				UserID:   1,
				Type:     repository.TypeDailyBonus,
				Currency: repository.CurrencyUNI,
				Amount:   decimal.NewFromInt(1),
				Status:   repository.TransactionStatus("settled"),
			})
			Expect(err).To(MatchError(repository.ErrInvalidEntry))

			txs, _ := repo.TransactionsByUser(ctx, 1, 10)
			Expect(txs).To(BeEmpty())
		})

		It("should record the requested status", func() {
			_, err := repo.Credit(ctx, repository.Entry{
				UserID:   1,
				Type:     repository.TypeFarmingReward,
				Currency: repository.CurrencyUNI,
				Amount:   decimal.NewFromInt(2),
				Status:   repository.StatusPending,
			})
			Expect(err).NotTo(HaveOccurred())

			txs, err := repo.TransactionsByUser(ctx, 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(1))
			Expect(txs[0].Status).To(Equal(repository.StatusPending))
		})

		It("should return ErrUserNotFound for an unknown user", func() {
			_, err := repo.Credit(ctx, repository.Entry{
				UserID:   42,
				Type:     repository.TypeDailyBonus,
				Currency: repository.CurrencyUNI,
				Amount:   decimal.NewFromInt(1),
			})
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})

		It("should not lose updates under concurrent credits", func() {
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := repo.Credit(ctx, repository.Entry{
						UserID:   1,
						Type:     repository.TypeReferralBonus,
						Currency: repository.CurrencyUNI,
						Amount:   decimal.NewFromInt(5),
					})
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			stored, _ := repo.GetUser(ctx, 1)
			Expect(stored.BalanceUNI.Equal(decimal.NewFromInt(100))).To(BeTrue())

			txs, _ := repo.TransactionsByUser(ctx, 1, 50)
			Expect(txs).To(HaveLen(20))
		})
	})

	Describe("Apply", func() {
		BeforeEach(func() {
			newUser(1, "ref_a", nil)
			_, err := repo.Credit(ctx, repository.Entry{
				UserID:   1,
				Type:     repository.TypeDailyBonus,
				Currency: repository.CurrencyUNI,
				Amount:   decimal.NewFromInt(10),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should commit nothing when the mutation returns no entry", func() {
			u, err := repo.Apply(ctx, 1, func(u *repository.User) (*repository.Entry, error) {
				u.CheckinStreak = 9
				return nil, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.CheckinStreak).To(BeZero())

			stored, _ := repo.GetUser(ctx, 1)
			Expect(stored.CheckinStreak).To(BeZero())
		})

		It("should persist field changes together with the entry", func() {
			u, err := repo.Apply(ctx, 1, func(u *repository.User) (*repository.Entry, error) {
				u.CheckinStreak = 2
				u.BalanceUNI = decimal.NewFromInt(1_000_000)
				return &repository.Entry{
					Type:     repository.TypeDailyBonus,
					Currency: repository.CurrencyUNI,
					Amount:   decimal.NewFromInt(5),
				}, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.CheckinStreak).To(Equal(2))
			Expect(u.BalanceUNI.Equal(decimal.NewFromInt(15))).To(BeTrue())

			stored, _ := repo.GetUser(ctx, 1)
			Expect(stored.BalanceUNI.Equal(decimal.NewFromInt(15))).To(BeTrue())
			Expect(stored.CheckinStreak).To(Equal(2))
		})

		It("should refuse to take the balance below zero", func() {
			_, err := repo.Apply(ctx, 1, func(u *repository.User) (*repository.Entry, error) {
				u.UniDepositAmount = decimal.NewFromInt(11)
				return &repository.Entry{
					Type:     repository.TypeDeposit,
					Currency: repository.CurrencyUNI,
					Amount:   decimal.NewFromInt(11),
				}, nil
			})
			Expect(err).To(MatchError(repository.ErrInsufficientBalance))

			stored, _ := repo.GetUser(ctx, 1)
			Expect(stored.BalanceUNI.Equal(decimal.NewFromInt(10))).To(BeTrue())
			Expect(stored.UniDepositAmount.IsZero()).To(BeTrue())
		})

		It("should list users with a farming deposit", func() {
			_, err := repo.Apply(ctx, 1, func(u *repository.User) (*repository.Entry, error) {
				u.UniDepositAmount = decimal.NewFromInt(4)
				return &repository.Entry{
					Type:     repository.TypeDeposit,
					Currency: repository.CurrencyUNI,
					Amount:   decimal.NewFromInt(4),
				}, nil
			})
			Expect(err).NotTo(HaveOccurred())
			newUser(2, "ref_b", nil)

			ids, err := repo.FarmingUserIDs(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{1}))
		})
	})
})
