package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"unifarm/internal/repository"
	tokenIssuer "unifarm/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	refCodeAttempts      = 3
	defaultSessionTTL    = 24 * time.Hour
	defaultTransactions  = 50
	maxTransactionsLimit = 200
)

var ErrRefCodeExhausted error = errors.New("could not allocate a unique referral code")

// Accounts covers sign-in, registration and the read models of a user.
type Accounts struct {
	logs       *zap.SugaredLogger
	ledger     Ledger
	resolver   *ReferralResolver
	milestones *MilestoneService
	jwtIssuer  JWTIssuer
	initData   InitDataValidator
	sessionTTL time.Duration
}

func NewAccounts(
	logger *zap.SugaredLogger,
	ledger Ledger,
	resolver *ReferralResolver,
	milestones *MilestoneService,
	jwt JWTIssuer,
	initData InitDataValidator,
) *Accounts {
	return &Accounts{
		logs:       logger,
		ledger:     ledger,
		resolver:   resolver,
		milestones: milestones,
		jwtIssuer:  jwt,
		initData:   initData,
		sessionTTL: defaultSessionTTL,
	}
}

// Authenticate verifies Telegram init data, registers first-time users under
// the referrer named by start_param and returns a signed session token.
func (a *Accounts) Authenticate(ctx context.Context, initData string) (string, error) {
	data, err := a.initData.Validate(initData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInitData, err)
	}

	user, err := a.ledger.GetUserByTelegramID(ctx, data.User.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return "", fmt.Errorf("get user by telegram id: %w", err)
		}

		user, err = a.RegisterUser(ctx, data.User.ID, data.User.Username, data.StartParam)
		if err != nil {
			return "", fmt.Errorf("register user: %w", err)
		}
	}

	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatInt(user.ID, 10),
		Expiration: a.sessionTTL,
	})
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// RegisterUser creates a user. A parent code that matches nobody registers
// the user without a referrer. Once a referred user exists the referrer's
// milestone bonus is processed.
func (a *Accounts) RegisterUser(ctx context.Context, telegramID int64, username, parentCode string) (repository.User, error) {
	var parent *repository.User
	if code := strings.TrimSpace(parentCode); code != "" {
		ref, err := a.ledger.GetUserByRefCode(ctx, code)
		switch {
		case err == nil:
			parent = &ref
		case errors.Is(err, repository.ErrUserNotFound):
			a.logs.Warnw("unknown referral code at registration",
				"telegram_id", telegramID,
				"ref_code", code)
		default:
			return repository.User{}, fmt.Errorf("resolve referral code: %w", err)
		}
	}

	for attempt := 0; attempt < refCodeAttempts; attempt++ {
		user := repository.User{
			TelegramID: telegramID,
			Username:   username,
			RefCode:    newRefCode(),
		}
		if parent != nil {
			code := parent.RefCode
			user.ParentRefCode = &code
		}

		err := a.ledger.CreateUser(ctx, &user)
		if err == nil {
			a.logs.Infow("user registered",
				"user_id", user.ID,
				"telegram_id", telegramID,
				"parent_ref_code", user.ParentRefCode)
			if parent != nil {
				a.rewardReferrer(ctx, parent.ID)
			}
			return user, nil
		}
		if !errors.Is(err, repository.ErrDuplicateUser) {
			return repository.User{}, fmt.Errorf("create user: %w", err)
		}

		// lost a race against a parallel sign-in of the same account
		if existing, lookupErr := a.ledger.GetUserByTelegramID(ctx, telegramID); lookupErr == nil {
			return existing, nil
		}
	}

	return repository.User{}, ErrRefCodeExhausted
}

func (a *Accounts) rewardReferrer(ctx context.Context, referrerID int64) {
	res, err := a.milestones.ProcessMilestoneBonus(ctx, referrerID)
	if err != nil {
		a.logs.Errorw("milestone processing after registration failed",
			"referrer_id", referrerID,
			"error", err)
		return
	}
	if len(res.Thresholds) > 0 {
		a.logs.Infow("referrer reached milestone",
			"referrer_id", referrerID,
			"thresholds", res.Thresholds,
			"amount", res.Amount)
	}
}

func newRefCode() string {
	return "ref_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

func (a *Accounts) GetAccount(ctx context.Context, userID int64) (Account, error) {
	user, err := a.ledger.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Account{}, ErrUserNotFound
		}
		return Account{}, fmt.Errorf("get user: %w", err)
	}

	referrals, err := a.ledger.CountReferrals(ctx, user.RefCode)
	if err != nil {
		return Account{}, fmt.Errorf("count referrals: %w", err)
	}

	account := Account{
		ID:              user.ID,
		TelegramID:      user.TelegramID,
		Username:        user.Username,
		RefCode:         user.RefCode,
		ParentRefCode:   user.ParentRefCode,
		BalanceUNI:      user.BalanceUNI.String(),
		BalanceTON:      user.BalanceTON.String(),
		UniDeposit:      user.UniDepositAmount.String(),
		CheckinStreak:   user.CheckinStreak,
		DirectReferrals: referrals,
	}
	if user.CheckinLastDate != nil {
		account.CheckinLastDate = dayOf(*user.CheckinLastDate).Format(time.DateOnly)
	}

	return account, nil
}

// Transactions returns the newest records first. A non-positive limit means the default page.
func (a *Accounts) Transactions(ctx context.Context, userID int64, limit int) ([]TransactionRecord, error) {
	if limit <= 0 {
		limit = defaultTransactions
	}
	if limit > maxTransactionsLimit {
		limit = maxTransactionsLimit
	}

	txs, err := a.ledger.TransactionsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	records := make([]TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, toTransactionRecord(tx))
	}
	return records, nil
}

// ReferrerChain returns the ancestors of userID with their usernames.
func (a *Accounts) ReferrerChain(ctx context.Context, userID int64) ([]ChainLink, error) {
	chain, err := a.resolver.BuildReferrerChain(ctx, userID)
	if err != nil || len(chain) == 0 {
		return chain, err
	}

	ids := make([]int64, 0, len(chain))
	for _, link := range chain {
		ids = append(ids, link.UserID)
	}

	users, err := a.ledger.GetUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load referrers: %w", err)
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	for i := range chain {
		chain[i].Username = names[chain[i].UserID]
	}

	return chain, nil
}
