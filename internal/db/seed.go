package db

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"evmotors/internal/models"
)

// seed inserts a minimal demo data set when DB_SEED is set (development
// convenience). Safe to run on every startup.
func seed(conn *gorm.DB, log *logrus.Logger) {
	var dealership models.Dealership
	if err := conn.Where("name = ?", "Nairobi EV Hub").First(&dealership).Error; err == gorm.ErrRecordNotFound {
		dealership = models.Dealership{Name: "Nairobi EV Hub", Location: "Nairobi"}
		conn.Create(&dealership)
	}

	var customer models.Customer
	if err := conn.Where("email = ?", "amina@example.com").First(&customer).Error; err == gorm.ErrRecordNotFound {
		customer = models.Customer{Name: "Amina Odhiambo", Email: "amina@example.com"}
		conn.Create(&customer)
	}

	var vehicle models.Vehicle
	if err := conn.Where("model = ?", "Roam Air").First(&vehicle).Error; err == gorm.ErrRecordNotFound {
		vehicle = models.Vehicle{Model: "Roam Air", Price: 180000, DealershipID: dealership.ID}
		conn.Create(&vehicle)
	}

	log.Debug("seed data ensured")
}
