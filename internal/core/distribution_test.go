package core_test

import (
	"context"

	"unifarm/internal/core"
	"unifarm/internal/db"
	"unifarm/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RewardDistributor", func() {
	var (
		repo        *repository.LedgerRepository
		testDB      *db.GormDB
		ledger      core.Ledger
		distributor *core.RewardDistributor
		ctx         context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo, testDB = newLedger()
		ledger = repo
	})

	JustBeforeEach(func() {
		logger := zap.NewNop().Sugar()
		distributor = core.NewRewardDistributor(logger, ledger, core.NewReferralResolver(logger, repo))
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	When("user A is referred by B who is referred by C", func() {
		var (
			result core.DistributionResult
			err    error
		)

		BeforeEach(func() {
			createUser(repo, 3, 0) // C
			createUser(repo, 2, 3) // B
			createUser(repo, 1, 2) // A
		})

		JustBeforeEach(func() {
			result, err = distributor.DistributeFarmingRewards(ctx, 1, "100")
		})

		It("should credit B with 100 and C with 2", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Err()).NotTo(HaveOccurred())
			Expect(result.Credits).To(HaveLen(2))

			Expect(result.Credits[0].UserID).To(Equal(int64(2)))
			Expect(result.Credits[0].Level).To(Equal(1))
			Expect(result.Credits[0].Amount).To(Equal("100"))
			Expect(result.Credits[0].Credited).To(BeTrue())
			Expect(result.Credits[1].UserID).To(Equal(int64(3)))
			Expect(result.Credits[1].Level).To(Equal(2))
			Expect(result.Credits[1].Amount).To(Equal("2"))
			Expect(result.Credits[1].Credited).To(BeTrue())

			Expect(balanceOf(repo, 2).Equal(dec("100"))).To(BeTrue())
			Expect(balanceOf(repo, 3).Equal(dec("2"))).To(BeTrue())
		})

		It("should append one referral_bonus record per ancestor", func() {
			for _, expected := range []struct {
				user  int64
				level int
			}{{2, 1}, {3, 2}} {
				txs := transactionsOf(repo, expected.user)
				Expect(txs).To(HaveLen(1))
				Expect(txs[0].Type).To(Equal(repository.TypeReferralBonus))
				Expect(txs[0].Currency).To(Equal(repository.CurrencyUNI))
				Expect(*txs[0].ReferralLevel).To(Equal(expected.level))
				Expect(*txs[0].SourceUserID).To(Equal(int64(1)))
				Expect(txs[0].Description).To(ContainSubstring("level %d", expected.level))
				Expect(txs[0].Description).To(ContainSubstring("user 1"))
			}
		})

		It("should leave A untouched", func() {
			Expect(balanceOf(repo, 1).IsZero()).To(BeTrue())
			Expect(transactionsOf(repo, 1)).To(BeEmpty())
		})
	})

	When("the user has no referrer", func() {
		It("should succeed without any effect", func() {
			createUser(repo, 1, 0)

			result, err := distributor.DistributeFarmingRewards(ctx, 1, "100")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Credits).To(BeEmpty())
			Expect(transactionsOf(repo, 1)).To(BeEmpty())
		})
	})

	When("the reward is zero", func() {
		It("should succeed without crediting anyone", func() {
			createUser(repo, 2, 0)
			createUser(repo, 1, 2)

			result, err := distributor.DistributeFarmingRewards(ctx, 1, "0")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Credits).To(BeEmpty())
			Expect(transactionsOf(repo, 2)).To(BeEmpty())
		})
	})

	When("the input is invalid", func() {
		BeforeEach(func() {
			createUser(repo, 2, 0)
			createUser(repo, 1, 2)
		})

		It("should reject a malformed amount before touching balances", func() {
			result, err := distributor.DistributeFarmingRewards(ctx, 1, "1O0")
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(result.Success).To(BeFalse())
			Expect(balanceOf(repo, 2).IsZero()).To(BeTrue())
		})

		It("should reject a negative amount", func() {
			result, err := distributor.DistributeFarmingRewards(ctx, 1, "-1")
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(result.Success).To(BeFalse())
		})

		It("should reject an unknown user", func() {
			result, err := distributor.DistributeFarmingRewards(ctx, 77, "10")
			Expect(err).To(MatchError(core.ErrUserNotFound))
			Expect(result.Success).To(BeFalse())
		})
	})

	When("the referral graph is corrupt", func() {
		It("should fail without crediting anyone", func() {
			createUser(repo, 1, 2)
			createUser(repo, 2, 1)

			result, err := distributor.DistributeFarmingRewards(ctx, 1, "10")
			Expect(err).To(MatchError(core.ErrReferralCycle))
			Expect(result.Success).To(BeFalse())
			Expect(balanceOf(repo, 2).IsZero()).To(BeTrue())
		})
	})

	When("crediting one ancestor fails", func() {
		BeforeEach(func() {
			createUser(repo, 4, 0)
			createUser(repo, 3, 4)
			createUser(repo, 2, 3)
			createUser(repo, 1, 2)
			ledger = failingLedger{Ledger: repo, failFor: 3}
		})

		It("should keep paying the remaining ancestors and report the failure", func() {
			result, err := distributor.DistributeFarmingRewards(ctx, 1, "50")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Credits).To(HaveLen(3))

			Expect(result.Credits[0].Credited).To(BeTrue())
			Expect(result.Credits[1].Credited).To(BeFalse())
			Expect(result.Credits[1].Error).To(Equal(errCreditRefused.Error()))
			Expect(result.Credits[2].Credited).To(BeTrue())

			Expect(result.Failed()).To(HaveLen(1))
			Expect(result.Err()).To(MatchError(errCreditRefused))

			Expect(balanceOf(repo, 2).Equal(dec("50"))).To(BeTrue())
			Expect(balanceOf(repo, 3).IsZero()).To(BeTrue())
			Expect(balanceOf(repo, 4).Equal(dec("1.5"))).To(BeTrue())
		})
	})

	Describe("OnIncome", func() {
		BeforeEach(func() {
			createUser(repo, 2, 0)
			createUser(repo, 1, 2)
		})

		DescribeTable("non-farming income never distributes",
			func(source core.IncomeSource) {
				Expect(source.EarnsReferralCommission()).To(BeFalse())

				result, err := distributor.OnIncome(ctx, source, core.Income{UserID: 1, Amount: "100"})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.Credits).To(BeEmpty())
				Expect(balanceOf(repo, 2).IsZero()).To(BeTrue())
				Expect(transactionsOf(repo, 2)).To(BeEmpty())
			},
			Entry("mission completion", core.SourceMission),
			Entry("boost purchase", core.SourceBoost),
			Entry("daily bonus", core.SourceDailyBonus),
			Entry("milestone bonus", core.SourceMilestone),
			Entry("referral reward", core.SourceReferral),
		)

		It("should pay a harvest only once", func() {
			income := core.Income{UserID: 1, Currency: repository.CurrencyUNI, Amount: "10", HarvestID: "h-1"}

			first, err := distributor.OnIncome(ctx, core.SourceFarming, income)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Credits[0].Credited).To(BeTrue())

			second, err := distributor.OnIncome(ctx, core.SourceFarming, income)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Credits[0].Credited).To(BeFalse())
			Expect(second.Credits[0].Skipped).To(BeTrue())

			Expect(balanceOf(repo, 2).Equal(dec("10"))).To(BeTrue())
		})

		It("should credit TON income in TON", func() {
			_, err := distributor.OnIncome(ctx, core.SourceFarming, core.Income{UserID: 1, Currency: repository.CurrencyTON, Amount: "0.5"})
			Expect(err).NotTo(HaveOccurred())

			u, err := repo.GetUser(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.BalanceTON.Equal(dec("0.5"))).To(BeTrue())
			Expect(u.BalanceUNI.IsZero()).To(BeTrue())
		})

		It("should reject an unknown currency", func() {
			_, err := distributor.OnIncome(ctx, core.SourceFarming, core.Income{UserID: 1, Currency: "BTC", Amount: "1"})
			Expect(err).To(MatchError(core.ErrInvalidCurrency))
		})
	})
})
