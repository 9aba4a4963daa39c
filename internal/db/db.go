package db

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")
var ErrUnknownDriver = errors.New("unknown database driver")

type GormDB struct {
	DB *gorm.DB
}

// Open connects with the named driver, "postgres" or "sqlite".
func Open(driver, dsn string) (*GormDB, error) {
	switch driver {
	case "postgres":
		return NewPostgresDB(dsn)
	case "sqlite":
		return NewSQLiteDB(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

// NewSQLiteDB opens an sqlite database. The pool is capped at one connection
// so write transactions are serialized instead of failing with SQLITE_BUSY.
func NewSQLiteDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &GormDB{
		DB: db,
	}, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

func (g *GormDB) MigrateModels(models ...any) error {
	err := g.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (g *GormDB) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
