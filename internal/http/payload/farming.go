package payload

import (
	"errors"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var errNotPositiveDecimal error = errors.New("must be a positive decimal number")
var errNotDecimal error = errors.New("must be a non-negative decimal number")

// positiveDecimal accepts strings such as "12.5"; empty strings are left to validation.Required.
var positiveDecimal = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return errNotPositiveDecimal
	}
	return nil
})

var nonNegativeDecimal = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return errNotDecimal
	}
	return nil
})

type DepositRequest struct {
	Amount string `json:"amount"`
}

func (d DepositRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Amount, validation.Required, positiveDecimal),
	)
}

// DistributeRequest is sent by the farming engine once a harvest is final.
type DistributeRequest struct {
	UserID    int64  `json:"userId"`
	Amount    string `json:"amount"`
	HarvestID string `json:"harvestId"`
}

func (d DistributeRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&d.Amount, validation.Required, nonNegativeDecimal),
		validation.Field(&d.HarvestID, validation.Length(0, 64)),
	)
}
