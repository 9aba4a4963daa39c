package core

import (
	"context"
	"errors"
	"fmt"

	"unifarm/internal/repository"

	"go.uber.org/zap"
)

// MaxReferralDepth is the deepest ancestor level that earns commission.
const MaxReferralDepth = 20

type ReferralResolver struct {
	logs  *zap.SugaredLogger
	users UserReader
}

func NewReferralResolver(logger *zap.SugaredLogger, users UserReader) *ReferralResolver {
	return &ReferralResolver{
		logs:  logger,
		users: users,
	}
}

// BuildReferrerChain walks parent referral codes upwards from userID, nearest
// ancestor first, for at most MaxReferralDepth levels. An unknown user yields
// an empty chain and a code that no longer resolves ends the walk. A user
// reached twice means the graph is corrupt and fails with ErrReferralCycle.
func (r *ReferralResolver) BuildReferrerChain(ctx context.Context, userID int64) ([]ChainLink, error) {
	chain := []ChainLink{}

	user, err := r.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return chain, nil
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	visited := map[int64]struct{}{user.ID: {}}
	code := user.ParentRefCode

	for level := 1; level <= MaxReferralDepth; level++ {
		if code == nil || *code == "" {
			break
		}

		ancestor, err := r.users.GetUserByRefCode(ctx, *code)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				r.logs.Warnw("referral code does not resolve, chain ends here",
					"user_id", userID,
					"ref_code", *code,
					"level", level)
				break
			}
			return nil, fmt.Errorf("resolve referral code %q: %w", *code, err)
		}

		if _, seen := visited[ancestor.ID]; seen {
			r.logs.Errorw("referral cycle detected",
				"user_id", userID,
				"ancestor_id", ancestor.ID,
				"level", level)
			return nil, fmt.Errorf("%w: user %d reached again at level %d", ErrReferralCycle, ancestor.ID, level)
		}
		visited[ancestor.ID] = struct{}{}

		chain = append(chain, ChainLink{UserID: ancestor.ID, Level: level})
		code = ancestor.ParentRefCode
	}

	return chain, nil
}
