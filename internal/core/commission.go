package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var commissionRates = buildCommissionRates()

// level 1 earns the whole base amount, level 2 two percent, level n >= 3 n percent.
func buildCommissionRates() [MaxReferralDepth + 1]decimal.Decimal {
	var rates [MaxReferralDepth + 1]decimal.Decimal
	rates[1] = decimal.NewFromInt(1)
	rates[2] = decimal.New(2, -2)
	for level := 3; level <= MaxReferralDepth; level++ {
		rates[level] = decimal.New(int64(level), -2)
	}
	return rates
}

func CommissionRate(level int) (decimal.Decimal, error) {
	if level < 1 || level > MaxReferralDepth {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return commissionRates[level], nil
}

// CalculateReferralCommissions prices every link of the chain against baseAmount.
func CalculateReferralCommissions(baseAmount string, chain []ChainLink) ([]Commission, error) {
	base, err := ParseAmount(baseAmount)
	if err != nil {
		return nil, err
	}

	commissions := make([]Commission, 0, len(chain))
	for _, link := range chain {
		rate, err := CommissionRate(link.Level)
		if err != nil {
			return nil, err
		}

		commissions = append(commissions, Commission{
			UserID: link.UserID,
			Level:  link.Level,
			Amount: base.Mul(rate),
		})
	}

	return commissions, nil
}
