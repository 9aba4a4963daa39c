package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unifarm/internal/config"
	"unifarm/internal/core"
	"unifarm/internal/db"
	"unifarm/internal/http/handler"
	"unifarm/internal/http/handler/middleware"
	"unifarm/internal/http/payload"
	"unifarm/internal/http/server"
	"unifarm/internal/repository"
	"unifarm/internal/scheduler"
	"unifarm/pkg/jwt"
	"unifarm/pkg/log"
	"unifarm/pkg/telegram"

	"github.com/jonboulle/clockwork"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	claimBurst        = 3
	limiterPruneEvery = 5 * time.Minute
)

func Start() (err error) {
	config, err := config.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("unifarm", log.ParseLevel(config.LogLevel))
	defer func() {
		_ = logger.Sync()
	}()

	dbConn, err := db.Open(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer func() {
		err = multierr.Append(err, dbConn.Close())
	}()

	// repository
	repo := repository.NewLedgerRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// business rules
	dailyPolicy, err := core.NewDailyBonusPolicy(config.Bonus.DailyBase, config.Bonus.DailyIncrement, config.Bonus.DailyCap)
	if err != nil {
		logger.Errorw("invalid daily bonus configuration", "error", err)
		return err
	}
	milestones, err := core.ParseMilestoneTable(config.Bonus.MilestoneTable)
	if err != nil {
		logger.Errorw("invalid milestone table", "error", err)
		return err
	}
	farmingPolicy, err := core.NewFarmingPolicy(config.Farming.DailyRate)
	if err != nil {
		logger.Errorw("invalid farming configuration", "error", err)
		return err
	}

	// core services
	clock := clockwork.NewRealClock()
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))
	initData := telegram.NewValidator(config.BotToken, config.InitDataMaxAge)

	resolver := core.NewReferralResolver(logger, repo)
	distributor := core.NewRewardDistributor(logger, repo, resolver)
	milestoneSvc := core.NewMilestoneService(logger, repo, milestones)
	dailySvc := core.NewDailyBonusService(logger, repo, dailyPolicy, clock)
	farmingSvc := core.NewFarmingService(logger, repo, distributor, farmingPolicy, clock)
	accounts := core.NewAccounts(logger, repo, resolver, milestoneSvc, jwtService, initData)

	// scheduler
	harvests := scheduler.NewHarvestScheduler(logger, repo, farmingSvc, config.Farming.HarvestSchedule, config.Farming.HarvestWorkers)
	if err = harvests.Start(); err != nil {
		logger.Errorw("failed to start harvest scheduler", "error", err)
		return err
	}
	defer harvests.Stop()

	// handler
	farmHlr := handler.NewFarmHandler(
		logger,
		payload.DecodeValidator{},
		accounts,
		core.NewBonuses(dailySvc, milestoneSvc),
		farmingSvc)

	limiter := middleware.NewRateLimiter(config.Bonus.ClaimsPerMin, claimBurst)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go limiter.PruneEvery(ctx, limiterPruneEvery)

	router := handler.NewRouter(logger, farmHlr, handler.RouterConfig{
		Tokens:        jwtService,
		Limiter:       limiter,
		InternalToken: config.InternalToken,
	})

	srv := server.NewHTTP(logger, router, config.Port)
	return run(logger, srv)
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
