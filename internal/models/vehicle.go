package models

import (
	"time"

	"evmotors/internal/validation"
)

// Vehicle sits on a dealership's lot and, once sold, carries the buying
// customer. CustomerID stays nil until a sale.
type Vehicle struct {
	ID           uint       `gorm:"primaryKey"`
	Model        string     `gorm:"not null"`
	Price        float64    `gorm:"not null"`
	DealershipID uint       `gorm:"not null;index"` // FK to Dealership
	Dealership   Dealership `gorm:"foreignKey:DealershipID"`
	CustomerID   *uint      `gorm:"index"` // FK to Customer, nil while unsold
	Customer     *Customer  `gorm:"foreignKey:CustomerID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewVehicle validates the fields only; foreign-key existence is checked by
// the store inside the insert transaction.
func NewVehicle(model string, price float64, dealershipID uint, customerID *uint) (*Vehicle, error) {
	v := validation.Violations{}
	validation.Required("model", model, v)
	validation.PositiveFloat("price", price, v)
	if err := v.Err("model", "price"); err != nil {
		return nil, err
	}
	return &Vehicle{
		Model:        model,
		Price:        price,
		DealershipID: dealershipID,
		CustomerID:   customerID,
	}, nil
}
