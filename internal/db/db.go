package db

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"evmotors/internal/config"
	"evmotors/internal/models"
)

// Entities lists every persisted model in dependency order. Schema creation
// and tests share it.
func Entities() []interface{} {
	return []interface{}{
		&models.Dealership{},
		&models.Customer{},
		&models.Vehicle{},
		&models.Payment{},
	}
}

var coreTables = []string{"dealerships", "customers", "vehicles", "payments"}

// ConnectAndMigrate opens the store and initializes the schema idempotently.
// A postgres URL selects the postgres driver; anything else is treated as a
// sqlite file path. Failure here is fatal to the process, not retried by the
// caller.
func ConnectAndMigrate(cfg config.Config, log *logrus.Logger) (*gorm.DB, error) {
	dsn := NormalizeDSN(cfg.DatabaseDSN)

	logLevel := gormlogger.Silent
	if cfg.DBDebug {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	if IsPostgresDSN(dsn) {
		// Retry only for the network database, to let it come up.
		for i := 0; i < 5; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), gormCfg)
			if err == nil {
				break
			}
			log.WithError(err).Warn("retrying database connection")
			time.Sleep(2 * time.Second)
		}
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, errors.Wrap(pingErr, "db ping failed")
	}

	if cfg.Migrations {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, errors.Wrap(err, "sql migrations failed")
		}
	} else {
		for _, m := range Entities() {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return nil, errors.Wrapf(migErr, "automigrate %T", m)
			}
		}
	}

	// sanity check: ensure the four tables exist
	for _, table := range coreTables {
		if !conn.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}

	if cfg.DBSeed {
		seed(conn, log)
	}

	log.WithFields(logrus.Fields{"env": cfg.Env, "dsn": dsn}).Debug("database ready")
	return conn, nil
}
