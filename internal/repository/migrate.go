package repository

import "gorm.io/gorm"

// AutoMigrate keeps the schema in step with the private persistence models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&groupModel{},
		&invoiceItemModel{},
		&paymentRowModel{},
		&catalogEntryModel{},
		&venueModel{},
		&clientModel{},
	)
}
