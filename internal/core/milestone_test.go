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

var _ = Describe("ParseMilestoneTable", func() {
	It("should parse and sort threshold:bonus pairs", func() {
		table, err := core.ParseMilestoneTable(" 10:1000, 5:500 ,25:3000,")
		Expect(err).NotTo(HaveOccurred())
		Expect(table).To(HaveLen(3))
		Expect(table[0].Threshold).To(Equal(int64(5)))
		Expect(table[1].Threshold).To(Equal(int64(10)))
		Expect(table[2].Bonus.Equal(dec("3000"))).To(BeTrue())
	})

	DescribeTable("should reject malformed tables",
		func(raw string) {
			_, err := core.ParseMilestoneTable(raw)
			Expect(err).To(MatchError(core.ErrInvalidConfig))
		},
		Entry("missing separator", "5-500"),
		Entry("zero threshold", "0:500"),
		Entry("negative bonus", "5:-1"),
		Entry("repeated threshold", "5:500,5:600"),
		Entry("non numeric threshold", "five:500"),
	)

	It("should list reached milestones in order", func() {
		table, err := core.ParseMilestoneTable("5:500,10:1000,25:3000")
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Reached(4)).To(BeEmpty())
		Expect(table.Reached(10)).To(HaveLen(2))
		Expect(table.Reached(100)).To(HaveLen(3))
	})
})

var _ = Describe("MilestoneService", func() {
	var (
		repo    *repository.LedgerRepository
		testDB  *db.GormDB
		service *core.MilestoneService
		ctx     context.Context
	)

	addReferrals := func(parent int64, firstID int64, n int) {
		for i := 0; i < n; i++ {
			createUser(repo, firstID+int64(i), parent)
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo, testDB = newLedger()

		table, err := core.ParseMilestoneTable("2:100,3:250,5:250")
		Expect(err).NotTo(HaveOccurred())
		service = core.NewMilestoneService(zap.NewNop().Sugar(), repo, table)

		createUser(repo, 1, 0)
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	When("no threshold is reached", func() {
		BeforeEach(func() {
			addReferrals(1, 100, 1)
		})

		It("should pay nothing", func() {
			result, err := service.ProcessMilestoneBonus(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Amount).To(Equal("0"))
			Expect(result.Thresholds).To(BeEmpty())
			Expect(result.ReferralCount).To(Equal(int64(1)))
			Expect(transactionsOf(repo, 1)).To(BeEmpty())
		})
	})

	When("a threshold is reached", func() {
		BeforeEach(func() {
			addReferrals(1, 100, 2)
		})

		It("should pay it once however often it is processed", func() {
			result, err := service.ProcessMilestoneBonus(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Amount).To(Equal("100"))
			Expect(result.Thresholds).To(Equal([]int64{2}))

			result, err = service.ProcessMilestoneBonus(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Amount).To(Equal("0"))
			Expect(result.Thresholds).To(BeEmpty())

			Expect(balanceOf(repo, 1).Equal(dec("100"))).To(BeTrue())
			txs := transactionsOf(repo, 1)
			Expect(txs).To(HaveLen(1))
			Expect(txs[0].Type).To(Equal(repository.TypeMilestoneBonus))
			Expect(*txs[0].IdempotencyKey).To(Equal("milestone:1:2"))
		})
	})

	When("several thresholds are crossed at once", func() {
		BeforeEach(func() {
			addReferrals(1, 100, 5)
		})

		It("should pay every one of them, including equal bonuses", func() {
			result, err := service.ProcessMilestoneBonus(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Thresholds).To(Equal([]int64{2, 3, 5}))
			Expect(result.Amount).To(Equal("600"))
			Expect(transactionsOf(repo, 1)).To(HaveLen(3))
		})
	})

	When("the next threshold is reached later", func() {
		BeforeEach(func() {
			addReferrals(1, 100, 2)
			_, err := service.ProcessMilestoneBonus(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			addReferrals(1, 200, 1)
		})

		It("should pay only the new one", func() {
			result, err := service.ProcessMilestoneBonus(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Thresholds).To(Equal([]int64{3}))
			Expect(result.Amount).To(Equal("250"))
			Expect(balanceOf(repo, 1).Equal(dec("350"))).To(BeTrue())
		})
	})

	When("the user does not exist", func() {
		It("should return ErrUserNotFound", func() {
			result, err := service.ProcessMilestoneBonus(ctx, 42)
			Expect(err).To(MatchError(core.ErrUserNotFound))
			Expect(result.Amount).To(Equal("0"))
		})
	})
})
