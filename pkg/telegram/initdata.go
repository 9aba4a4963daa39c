package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

var (
	ErrInvalidSignature = errors.New("init data signature is invalid")
	ErrExpired          = errors.New("init data expired")
	ErrMissingUser      = errors.New("init data has no user")
)

// InitData is the verified part of a Mini App launch payload.
type InitData struct {
	User       telego.User
	StartParam string
	QueryID    string
	AuthDate   time.Time
}

type Validator struct {
	botToken string
	maxAge   time.Duration
	now      func() time.Time
}

type Option func(*Validator)

// WithClock overrides the time source used for the expiry check.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// NewValidator checks init data signed for botToken. A zero maxAge disables
// the expiry check.
func NewValidator(botToken string, maxAge time.Duration, opts ...Option) *Validator {
	v := &Validator{
		botToken: botToken,
		maxAge:   maxAge,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Validate(initData string) (InitData, error) {
	values, err := tu.ValidateWebAppData(v.botToken, initData)
	if err != nil {
		return InitData{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	authUnix, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return InitData{}, fmt.Errorf("parse auth_date: %w", err)
	}
	authDate := time.Unix(authUnix, 0).UTC()

	if v.maxAge > 0 && v.now().Sub(authDate) > v.maxAge {
		return InitData{}, fmt.Errorf("%w: issued at %s", ErrExpired, authDate.Format(time.RFC3339))
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return InitData{}, ErrMissingUser
	}

	var user telego.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return InitData{}, fmt.Errorf("decode user: %w", err)
	}
	if user.ID == 0 {
		return InitData{}, ErrMissingUser
	}

	return InitData{
		User:       user,
		StartParam: values.Get("start_param"),
		QueryID:    values.Get("query_id"),
		AuthDate:   authDate,
	}, nil
}
