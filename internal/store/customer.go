package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"evmotors/internal/models"
)

func (s *Store) CreateCustomer(name, email string) (*models.Customer, error) {
	customer, err := models.NewCustomer(name, email)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if insertErr := tx.Create(customer).Error; insertErr != nil {
			s.log.WithError(insertErr).Debug("customer insert rejected")
			return ErrInvalidData
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes the customer, deletes their payments and detaches
// their vehicles (the vehicles themselves stay on the lot, unsold again).
func (s *Store) DeleteCustomer(id uint) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return errors.Wrap(err, "load customer")
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return errors.Wrap(err, "delete payments")
		}
		if err := tx.Model(&models.Vehicle{}).Where("customer_id = ?", id).
			Update("customer_id", nil).Error; err != nil {
			return errors.Wrap(err, "detach vehicles")
		}
		if err := tx.Delete(&customer).Error; err != nil {
			return errors.Wrap(err, "delete customer")
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (s *Store) Customers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	return customers, nil
}

// CustomerByID returns nil (no error) when the id does not exist.
func (s *Store) CustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find customer")
	}
	return &customer, nil
}

// CustomerVehicles lists the vehicles a customer has purchased. Empty slice
// when the customer owns none, ErrNotFound when the customer id is missing.
func (s *Store) CustomerVehicles(id uint) ([]models.Vehicle, error) {
	if err := exists(s.db, &models.Customer{}, id, "customer"); err != nil {
		return nil, err
	}
	var vehicles []models.Vehicle
	if err := s.db.Where("customer_id = ?", id).Order("id").Find(&vehicles).Error; err != nil {
		return nil, errors.Wrap(err, "list customer vehicles")
	}
	return vehicles, nil
}
