package models

import (
	"time"

	"evmotors/internal/validation"
)

// Customer buys vehicles and makes payments on them.
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCustomer(name, email string) (*Customer, error) {
	v := validation.Violations{}
	validation.Required("name", name, v)
	validation.Email("email", email, v)
	if err := v.Err("name", "email"); err != nil {
		return nil, err
	}
	return &Customer{Name: name, Email: email}, nil
}
