package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"evmotors/internal/models"
)

// TotalPayments sums all payment amounts for the vehicle; 0 when there are
// none. The vehicle itself must exist.
func (s *Store) TotalPayments(vehicleID uint) (float64, error) {
	if err := exists(s.db, &models.Vehicle{}, vehicleID, "vehicle"); err != nil {
		return 0, err
	}
	var total float64
	err := s.db.Model(&models.Payment{}).
		Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "sum payments")
	}
	return total, nil
}

// RemainingBalance is price minus total paid. Negative on overpayment;
// reported as-is, never clamped.
func (s *Store) RemainingBalance(vehicleID uint) (float64, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.Wrapf(ErrNotFound, "vehicle %d", vehicleID)
		}
		return 0, errors.Wrap(err, "load vehicle")
	}
	total, err := s.TotalPayments(vehicleID)
	if err != nil {
		return 0, err
	}
	return vehicle.Price - total, nil
}
