package scheduler

import (
	"context"

	"unifarm/internal/core"
)

type Harvester interface {
	Harvest(ctx context.Context, userID int64) (core.HarvestResult, error)
}

type FarmerLister interface {
	FarmingUserIDs(ctx context.Context) ([]int64, error)
}
