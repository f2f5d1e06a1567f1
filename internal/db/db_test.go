package db_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evmotors/internal/config"
	"evmotors/internal/db"
	"evmotors/internal/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestConnectAndMigrate(t *testing.T) {
	cfg := config.Config{
		DatabaseDSN: "file:" + t.Name() + "?mode=memory&cache=shared",
		Env:         "test",
	}
	conn, err := db.ConnectAndMigrate(cfg, quietLogger())
	require.NoError(t, err)

	for _, table := range []string{"dealerships", "customers", "vehicles", "payments"} {
		assert.True(t, conn.Migrator().HasTable(table), "table %s should exist", table)
	}

	// Safe to call again on an initialized store.
	_, err = db.ConnectAndMigrate(cfg, quietLogger())
	require.NoError(t, err)
}

func TestConnectAndMigrateSeeds(t *testing.T) {
	cfg := config.Config{
		DatabaseDSN: "file:" + t.Name() + "?mode=memory&cache=shared",
		Env:         "test",
		DBSeed:      true,
	}
	conn, err := db.ConnectAndMigrate(cfg, quietLogger())
	require.NoError(t, err)

	var dealership models.Dealership
	require.NoError(t, conn.Where("name = ?", "Nairobi EV Hub").First(&dealership).Error)
	assert.Equal(t, "Nairobi", dealership.Location)

	// Seeding twice must not duplicate.
	_, err = db.ConnectAndMigrate(cfg, quietLogger())
	require.NoError(t, err)
	var n int64
	require.NoError(t, conn.Model(&models.Dealership{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
