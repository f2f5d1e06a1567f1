package models

import (
	"time"

	"evmotors/internal/validation"
)

// Dealership owns the vehicles on its lot. Deleting a dealership removes its
// vehicles (and their payments) with it.
type Dealership struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Location  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDealership validates every field before constructing the entity; it
// never touches storage.
func NewDealership(name, location string) (*Dealership, error) {
	v := validation.Violations{}
	validation.Required("name", name, v)
	validation.Required("location", location, v)
	if err := v.Err("name", "location"); err != nil {
		return nil, err
	}
	return &Dealership{Name: name, Location: location}, nil
}
