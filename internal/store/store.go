// Package store implements the repository operations over the relational
// store. Every mutating operation runs inside its own transaction and leaves
// the store untouched when it fails.
package store

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a required reference (dealership, customer, vehicle)
	// that does not exist. Lookups on a missing id return nil instead.
	ErrNotFound = errors.New("not found")
	// ErrCustomerMismatch is returned when a payment's customer conflicts
	// with the vehicle's assigned customer.
	ErrCustomerMismatch = errors.New("payment customer must match vehicle customer")
	// ErrInvalidData replaces any storage constraint violation during create;
	// the underlying detail is logged, not surfaced.
	ErrInvalidData = errors.New("invalid data")
)

type Store struct {
	db  *gorm.DB
	log *logrus.Entry
}

func New(conn *gorm.DB, logger *logrus.Logger) *Store {
	return &Store{db: conn, log: logger.WithField("component", "store")}
}

// exists checks a foreign key inside the caller's transaction.
func exists(tx *gorm.DB, model interface{}, id uint, entity string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return errors.Wrapf(err, "check %s %d", entity, id)
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "%s %d", entity, id)
	}
	return nil
}
