package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey          = "API_PORT"
	dbDriverEnvKey         = "DB_DRIVER"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	jwtSecretEnvKey        = "JWT_SECRET"
	botTokenEnvKey         = "TELEGRAM_BOT_TOKEN"
	internalTokenEnvKey    = "INTERNAL_API_TOKEN"
	initDataMaxAgeEnvKey   = "INIT_DATA_MAX_AGE"
	dailyBaseEnvKey        = "DAILY_BONUS_BASE"
	dailyIncrementEnvKey   = "DAILY_BONUS_INCREMENT"
	dailyCapEnvKey         = "DAILY_BONUS_CAP"
	milestoneTableEnvKey   = "MILESTONE_TABLE"
	farmingRateEnvKey      = "FARMING_DAILY_RATE"
	harvestScheduleEnvKey  = "HARVEST_SCHEDULE"
	harvestWorkersEnvKey   = "HARVEST_CONCURRENCY"
	claimRateEnvKey        = "CLAIM_RATE_PER_MINUTE"
	logLevelEnvKey         = "LOG_LEVEL"
	defaultDBDriver        = "postgres"
	defaultInitDataMaxAge  = 24 * time.Hour
	defaultDailyBase       = "500"
	defaultDailyIncrement  = "10"
	defaultDailyCap        = "200"
	defaultMilestoneTable  = "5:500,10:1000,25:3000,50:7000,100:15000"
	defaultFarmingRate     = "0.005"
	defaultHarvestSchedule = "@hourly"
	defaultHarvestWorkers  = 4
	defaultClaimRate       = 10
	defaultLogLevel        = "info"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	JWTSecret       string
	BotToken        string
	InternalToken   string
	InitDataMaxAge  time.Duration
	LogLevel        string
	Bonus           Bonus
	Farming         Farming
}

// Bonus holds the business-rule tables as raw strings, parsed by the core package.
type Bonus struct {
	DailyBase      string
	DailyIncrement string
	DailyCap       string
	MilestoneTable string
	ClaimsPerMin   int
}

type Farming struct {
	DailyRate       string
	HarvestSchedule string
	HarvestWorkers  int
}

// NewApp reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment wins.
func NewApp() (App, error) {
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	botToken, ok := os.LookupEnv(botTokenEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, botTokenEnvKey)
	}

	internalToken, ok := os.LookupEnv(internalTokenEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, internalTokenEnvKey)
	}

	driver := lookupOrDefault(dbDriverEnvKey, defaultDBDriver)
	if driver != "postgres" && driver != "sqlite" {
		return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, dbDriverEnvKey, driver)
	}

	maxAge := defaultInitDataMaxAge
	if raw, ok := os.LookupEnv(initDataMaxAgeEnvKey); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, initDataMaxAgeEnvKey, err)
		}
		maxAge = d
	}

	workers, err := intOrDefault(harvestWorkersEnvKey, defaultHarvestWorkers)
	if err != nil {
		return App{}, err
	}

	claimRate, err := intOrDefault(claimRateEnvKey, defaultClaimRate)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            port,
		DBDriver:        driver,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		BotToken:        botToken,
		InternalToken:   internalToken,
		InitDataMaxAge:  maxAge,
		LogLevel:        lookupOrDefault(logLevelEnvKey, defaultLogLevel),
		Bonus: Bonus{
			DailyBase:      lookupOrDefault(dailyBaseEnvKey, defaultDailyBase),
			DailyIncrement: lookupOrDefault(dailyIncrementEnvKey, defaultDailyIncrement),
			DailyCap:       lookupOrDefault(dailyCapEnvKey, defaultDailyCap),
			MilestoneTable: lookupOrDefault(milestoneTableEnvKey, defaultMilestoneTable),
			ClaimsPerMin:   claimRate,
		},
		Farming: Farming{
			DailyRate:       lookupOrDefault(farmingRateEnvKey, defaultFarmingRate),
			HarvestSchedule: lookupOrDefault(harvestScheduleEnvKey, defaultHarvestSchedule),
			HarvestWorkers:  workers,
		},
	}, nil
}

func lookupOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intOrDefault(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, raw)
	}
	return n, nil
}
