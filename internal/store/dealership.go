package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"evmotors/internal/models"
)

func (s *Store) CreateDealership(name, location string) (*models.Dealership, error) {
	dealership, err := models.NewDealership(name, location)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if insertErr := tx.Create(dealership).Error; insertErr != nil {
			s.log.WithError(insertErr).Debug("dealership insert rejected")
			return ErrInvalidData
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dealership, nil
}

// DeleteDealership removes the dealership and cascades to its vehicles and
// their payments in one transaction. Returns false when the id does not
// exist; a missing id is not an error.
func (s *Store) DeleteDealership(id uint) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var dealership models.Dealership
		if err := tx.First(&dealership, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return errors.Wrap(err, "load dealership")
		}
		owned := tx.Model(&models.Vehicle{}).Select("id").Where("dealership_id = ?", id)
		if err := tx.Where("vehicle_id IN (?)", owned).Delete(&models.Payment{}).Error; err != nil {
			return errors.Wrap(err, "delete payments")
		}
		if err := tx.Where("dealership_id = ?", id).Delete(&models.Vehicle{}).Error; err != nil {
			return errors.Wrap(err, "delete vehicles")
		}
		if err := tx.Delete(&dealership).Error; err != nil {
			return errors.Wrap(err, "delete dealership")
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (s *Store) Dealerships() ([]models.Dealership, error) {
	var dealerships []models.Dealership
	if err := s.db.Order("id").Find(&dealerships).Error; err != nil {
		return nil, errors.Wrap(err, "list dealerships")
	}
	return dealerships, nil
}

// DealershipByID returns nil (no error) when the id does not exist.
func (s *Store) DealershipByID(id uint) (*models.Dealership, error) {
	var dealership models.Dealership
	if err := s.db.First(&dealership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find dealership")
	}
	return &dealership, nil
}

// DealershipVehicles lists the dealership's vehicles. A dealership without
// vehicles yields an empty slice; a missing dealership yields ErrNotFound so
// callers can tell the two apart.
func (s *Store) DealershipVehicles(id uint) ([]models.Vehicle, error) {
	if err := exists(s.db, &models.Dealership{}, id, "dealership"); err != nil {
		return nil, err
	}
	var vehicles []models.Vehicle
	if err := s.db.Where("dealership_id = ?", id).Order("id").Find(&vehicles).Error; err != nil {
		return nil, errors.Wrap(err, "list dealership vehicles")
	}
	return vehicles, nil
}
