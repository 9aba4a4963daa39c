package core

import (
	"context"

	"unifarm/internal/repository"
	tokenIssuer "unifarm/pkg/jwt"
	"unifarm/pkg/telegram"

	"github.com/golang-jwt/jwt"
)

// UserReader is the read side of the balance store used by the referral walk.
type UserReader interface {
	GetUser(ctx context.Context, id int64) (repository.User, error)
	GetUserByRefCode(ctx context.Context, code string) (repository.User, error)
}

type Ledger interface {
	UserReader
	GetUserByTelegramID(ctx context.Context, telegramID int64) (repository.User, error)
	GetUsers(ctx context.Context, ids []int64) ([]repository.User, error)
	CreateUser(ctx context.Context, user *repository.User) error
	CountReferrals(ctx context.Context, refCode string) (int64, error)
	FarmingUserIDs(ctx context.Context) ([]int64, error)
	HasEntry(ctx context.Context, idempotencyKey string) (bool, error)
	TransactionsByUser(ctx context.Context, userID int64, limit int) ([]repository.Transaction, error)
	Apply(ctx context.Context, userID int64, fn repository.MutateFunc) (repository.User, error)
	Credit(ctx context.Context, entry repository.Entry) (repository.User, error)
}

type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

type InitDataValidator interface {
	Validate(initData string) (telegram.InitData, error)
}
