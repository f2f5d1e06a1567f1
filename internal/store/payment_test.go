package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evmotors/internal/models"
	"evmotors/internal/store"
	"evmotors/internal/validation"
)

func TestAddPayment(t *testing.T) {
	s := setupStore(t)
	dealership := seedDealership(t, s)
	customer := seedCustomer(t, s)
	vehicle, err := s.CreateVehicle("Roam Air", 180000, dealership.ID, nil)
	require.NoError(t, err)

	t.Run("Success with defaults", func(t *testing.T) {
		payment, err := s.AddPayment(vehicle.ID, customer.ID, 1000, nil)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, payment.Status)
		assert.WithinDuration(t, time.Now(), payment.PaymentDate, time.Minute)
	})

	t.Run("Success with explicit date", func(t *testing.T) {
		date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		payment, err := s.AddPayment(vehicle.ID, customer.ID, 500, &date)
		require.NoError(t, err)
		assert.True(t, payment.PaymentDate.Equal(date))
	})

	t.Run("Fail on non-positive amount", func(t *testing.T) {
		_, err := s.AddPayment(vehicle.ID, customer.ID, 0, nil)
		var fe *validation.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "amount", fe.Field)
	})

	t.Run("Fail on missing vehicle", func(t *testing.T) {
		_, err := s.AddPayment(9999, customer.ID, 100, nil)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Fail on missing customer", func(t *testing.T) {
		_, err := s.AddPayment(vehicle.ID, 9999, 100, nil)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAddPaymentCustomerMismatch(t *testing.T) {
	s := setupStore(t)
	dealership := seedDealership(t, s)
	owner := seedCustomer(t, s)
	other, err := s.CreateCustomer("Kwame Mensah", "kwame@example.com")
	require.NoError(t, err)

	sold, err := s.CreateVehicle("BasiGo K6", 250000, dealership.ID, &owner.ID)
	require.NoError(t, err)

	// Payment from a different customer on an assigned vehicle is rejected.
	_, err = s.AddPayment(sold.ID, other.ID, 100, nil)
	assert.ErrorIs(t, err, store.ErrCustomerMismatch)

	// And nothing was written.
	payments, err := s.VehiclePayments(sold.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)

	// An unassigned vehicle accepts payments from any existing customer.
	unsold, err := s.CreateVehicle("Roam Air", 180000, dealership.ID, nil)
	require.NoError(t, err)
	_, err = s.AddPayment(unsold.ID, other.ID, 100, nil)
	require.NoError(t, err)
}

func TestDeletePayment(t *testing.T) {
	s := setupStore(t)
	dealership := seedDealership(t, s)
	customer := seedCustomer(t, s)
	vehicle, err := s.CreateVehicle("Roam Air", 180000, dealership.ID, nil)
	require.NoError(t, err)
	payment, err := s.AddPayment(vehicle.ID, customer.ID, 100, nil)
	require.NoError(t, err)

	ok, err := s.DeletePayment(payment.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeletePayment(payment.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	found, err := s.PaymentByID(payment.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
