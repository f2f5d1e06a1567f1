package store_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"evmotors/internal/models"
	"evmotors/internal/store"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Dealership{}, &models.Customer{}, &models.Vehicle{}, &models.Payment{}))
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return store.New(conn, logger)
}

func seedDealership(t *testing.T, s *store.Store) *models.Dealership {
	t.Helper()
	dealership, err := s.CreateDealership("Nairobi EV Hub", "Nairobi")
	require.NoError(t, err)
	return dealership
}

func seedCustomer(t *testing.T, s *store.Store) *models.Customer {
	t.Helper()
	customer, err := s.CreateCustomer("Amina Odhiambo", "amina@example.com")
	require.NoError(t, err)
	return customer
}
