package db

import (
	"github.com/DarshanR43/satchi/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New opens the postgres connection pool described by the config.
func New(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// Domain writes manage their own transactions; skipping the
		// per-statement wrap keeps single reads cheap.
		SkipDefaultTransaction: true,
		// Unique violations surface as gorm.ErrDuplicatedKey so callers
		// can retry code generation instead of parsing pg error strings.
		TranslateError: true,
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}

	return d, nil
}
