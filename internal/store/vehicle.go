package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"evmotors/internal/models"
)

// CreateVehicle validates fields and foreign keys before insert. customerID
// is optional; when given it must reference an existing customer.
func (s *Store) CreateVehicle(model string, price float64, dealershipID uint, customerID *uint) (*models.Vehicle, error) {
	vehicle, err := models.NewVehicle(model, price, dealershipID, customerID)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Dealership{}, dealershipID, "dealership"); err != nil {
			return err
		}
		if customerID != nil {
			if err := exists(tx, &models.Customer{}, *customerID, "customer"); err != nil {
				return err
			}
		}
		if insertErr := tx.Create(vehicle).Error; insertErr != nil {
			s.log.WithError(insertErr).Debug("vehicle insert rejected")
			return ErrInvalidData
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes the vehicle together with its payments, so payments
// never outlive their vehicle. Returns false when the id does not exist.
func (s *Store) DeleteVehicle(id uint) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return errors.Wrap(err, "load vehicle")
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return errors.Wrap(err, "delete payments")
		}
		if err := tx.Delete(&vehicle).Error; err != nil {
			return errors.Wrap(err, "delete vehicle")
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (s *Store) Vehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Order("id").Find(&vehicles).Error; err != nil {
		return nil, errors.Wrap(err, "list vehicles")
	}
	return vehicles, nil
}

// VehicleByID returns nil (no error) when the id does not exist.
func (s *Store) VehicleByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find vehicle")
	}
	return &vehicle, nil
}

// VehiclePayments lists a vehicle's payment history in insertion order.
// Empty slice when there are none, ErrNotFound when the vehicle id is
// missing.
func (s *Store) VehiclePayments(id uint) ([]models.Payment, error) {
	if err := exists(s.db, &models.Vehicle{}, id, "vehicle"); err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := s.db.Where("vehicle_id = ?", id).Order("id").Find(&payments).Error; err != nil {
		return nil, errors.Wrap(err, "list vehicle payments")
	}
	return payments, nil
}
