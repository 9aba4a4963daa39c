package core

import "errors"

var (
	ErrUserNotFound      error = errors.New("user not found")
	ErrInvalidAmount     error = errors.New("invalid amount")
	ErrInvalidCurrency   error = errors.New("invalid currency")
	ErrInvalidLevel      error = errors.New("invalid referral level")
	ErrReferralCycle     error = errors.New("referral chain contains a cycle")
	ErrInvalidInitData   error = errors.New("invalid telegram init data")
	ErrInsufficientFunds error = errors.New("insufficient balance")
	ErrInvalidConfig     error = errors.New("invalid business rule configuration")
)
