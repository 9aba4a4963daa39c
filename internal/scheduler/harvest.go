package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"unifarm/internal/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultRunTimeout = 50 * time.Minute

// RunReport summarizes one pass over all farmers.
type RunReport struct {
	Users     int
	Harvested int
	Failed    int
}

type HarvestScheduler struct {
	logs      *zap.SugaredLogger
	cron      *cron.Cron
	farmers   FarmerLister
	harvester Harvester
	schedule  string
	workers   int
	running   sync.Mutex
}

func NewHarvestScheduler(logger *zap.SugaredLogger, farmers FarmerLister, harvester Harvester, schedule string, workers int) *HarvestScheduler {
	if workers <= 0 {
		workers = 1
	}
	return &HarvestScheduler{
		logs:      logger,
		cron:      cron.New(),
		farmers:   farmers,
		harvester: harvester,
		schedule:  schedule,
		workers:   workers,
	}
}

func (s *HarvestScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			s.logs.Errorw("scheduled harvest failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule harvest %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logs.Infow("harvest scheduler started", "schedule", s.schedule, "workers", s.workers)
	return nil
}

func (s *HarvestScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logs.Infow("harvest scheduler stopped")
}

// RunOnce harvests every user with a farming deposit. A failing user is
// logged and counted; only listing the users can fail the run. Overlapping
// runs are skipped.
func (s *HarvestScheduler) RunOnce(ctx context.Context) (RunReport, error) {
	if !s.running.TryLock() {
		s.logs.Warnw("previous harvest run still in progress, skipping")
		return RunReport{}, nil
	}
	defer s.running.Unlock()

	start := time.Now()
	defer func() {
		metrics.HarvestRunDuration.Observe(time.Since(start).Seconds())
	}()

	userIDs, err := s.farmers.FarmingUserIDs(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("list farming users: %w", err)
	}

	var harvested, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, userID := range userIDs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			result, err := s.harvester.Harvest(gctx, userID)
			if err != nil {
				failed.Add(1)
				s.logs.Errorw("harvest failed",
					"user_id", userID,
					"error", err)
				return nil
			}
			if result.HarvestID != "" {
				harvested.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report := RunReport{
		Users:     len(userIDs),
		Harvested: int(harvested.Load()),
		Failed:    int(failed.Load()),
	}
	s.logs.Infow("harvest run finished",
		"users", report.Users,
		"harvested", report.Harvested,
		"failed", report.Failed,
		"duration", time.Since(start))

	return report, ctx.Err()
}
