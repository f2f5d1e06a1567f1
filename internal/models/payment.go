package models

import (
	"time"

	"evmotors/internal/validation"
)

// StatusCompleted is the only status this layer ever produces.
const StatusCompleted = "completed"

// Payment records money received against a vehicle. CustomerID is stored
// directly (not only via the vehicle) for direct lookup.
type Payment struct {
	ID          uint      `gorm:"primaryKey"`
	VehicleID   uint      `gorm:"not null;index"` // FK to Vehicle
	CustomerID  uint      `gorm:"not null;index"` // FK to Customer
	Amount      float64   `gorm:"not null"`
	PaymentDate time.Time `gorm:"not null"`
	Status      string    `gorm:"not null;default:'completed'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPayment validates the amount and applies defaults: PaymentDate falls
// back to now, Status is always "completed".
func NewPayment(vehicleID, customerID uint, amount float64, paymentDate *time.Time) (*Payment, error) {
	v := validation.Violations{}
	validation.PositiveFloat("amount", amount, v)
	if err := v.Err("amount"); err != nil {
		return nil, err
	}
	date := time.Now()
	if paymentDate != nil {
		date = *paymentDate
	}
	return &Payment{
		VehicleID:   vehicleID,
		CustomerID:  customerID,
		Amount:      amount,
		PaymentDate: date,
		Status:      StatusCompleted,
	}, nil
}
