// Package core holds the UniFarm business rules: the referral chain and its
// commissions, farming yield, daily and milestone bonuses. Every balance
// change goes through Ledger.Apply so it commits together with its
// transaction record.
package core

// Bonuses exposes the daily and milestone bonus operations as one service.
type Bonuses struct {
	*DailyBonusService
	*MilestoneService
}

func NewBonuses(daily *DailyBonusService, milestones *MilestoneService) *Bonuses {
	return &Bonuses{
		DailyBonusService: daily,
		MilestoneService:  milestones,
	}
}
