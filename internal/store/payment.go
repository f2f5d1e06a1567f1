package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"evmotors/internal/models"
)

// AddPayment records a payment against a vehicle. The vehicle and customer
// must exist, and when the vehicle already has an assigned customer the
// payment's customer must match it. paymentDate defaults to now.
func (s *Store) AddPayment(vehicleID, customerID uint, amount float64, paymentDate *time.Time) (*models.Payment, error) {
	payment, err := models.NewPayment(vehicleID, customerID, amount, paymentDate)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, vehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "vehicle %d", vehicleID)
			}
			return errors.Wrap(err, "load vehicle")
		}
		if err := exists(tx, &models.Customer{}, customerID, "customer"); err != nil {
			return err
		}
		if vehicle.CustomerID != nil && *vehicle.CustomerID != customerID {
			return ErrCustomerMismatch
		}
		if insertErr := tx.Create(payment).Error; insertErr != nil {
			s.log.WithError(insertErr).Debug("payment insert rejected")
			return ErrInvalidData
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a single payment. Returns false when the id does not
// exist.
func (s *Store) DeletePayment(id uint) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return errors.Wrap(err, "load payment")
		}
		if err := tx.Delete(&payment).Error; err != nil {
			return errors.Wrap(err, "delete payment")
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (s *Store) Payments() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Order("id").Find(&payments).Error; err != nil {
		return nil, errors.Wrap(err, "list payments")
	}
	return payments, nil
}

// PaymentByID returns nil (no error) when the id does not exist.
func (s *Store) PaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find payment")
	}
	return &payment, nil
}
