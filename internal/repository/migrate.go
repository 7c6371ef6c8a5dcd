package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by main, the seed binary and the test suites.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&roomModel{},
		&rentalModel{},
		&invoiceModel{},
		&revenueBucketModel{},
	)
}
