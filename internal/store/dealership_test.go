package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evmotors/internal/store"
	"evmotors/internal/validation"
)

func TestCreateDealership(t *testing.T) {
	s := setupStore(t)

	t.Run("Success and round-trip", func(t *testing.T) {
		created, err := s.CreateDealership("Nairobi EV Hub", "Nairobi")
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		all, err := s.Dealerships()
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Nairobi EV Hub", all[0].Name)
		assert.Equal(t, "Nairobi", all[0].Location)
		assert.Equal(t, created.ID, all[0].ID)
	})

	t.Run("Fail on empty name", func(t *testing.T) {
		_, err := s.CreateDealership("   ", "Nairobi")
		var fe *validation.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "name", fe.Field)
	})

	t.Run("Fail on empty location", func(t *testing.T) {
		_, err := s.CreateDealership("Mombasa EV", "")
		var fe *validation.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "location", fe.Field)
	})
}

func TestFindDealership(t *testing.T) {
	s := setupStore(t)
	created := seedDealership(t, s)

	found, err := s.DealershipByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Name, found.Name)

	// Absent is not an error.
	missing, err := s.DealershipByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteDealershipCascades(t *testing.T) {
	s := setupStore(t)
	dealership := seedDealership(t, s)
	customer := seedCustomer(t, s)

	v1, err := s.CreateVehicle("Roam Air", 180000, dealership.ID, nil)
	require.NoError(t, err)
	v2, err := s.CreateVehicle("BasiGo K6", 250000, dealership.ID, &customer.ID)
	require.NoError(t, err)
	_, err = s.AddPayment(v2.ID, customer.ID, 1000, nil)
	require.NoError(t, err)

	ok, err := s.DeleteDealership(dealership.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, id := range []uint{v1.ID, v2.ID} {
		vehicle, err := s.VehicleByID(id)
		require.NoError(t, err)
		assert.Nil(t, vehicle, "vehicle %d should be cascade-deleted", id)
	}
	payments, err := s.Payments()
	require.NoError(t, err)
	assert.Empty(t, payments, "payments must not outlive their vehicle")
}

func TestDeleteDealershipMissing(t *testing.T) {
	s := setupStore(t)
	ok, err := s.DeleteDealership(42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDealershipVehiclesDistinguishesEmptyFromMissing(t *testing.T) {
	s := setupStore(t)
	dealership := seedDealership(t, s)

	vehicles, err := s.DealershipVehicles(dealership.ID)
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	_, err = s.DealershipVehicles(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
