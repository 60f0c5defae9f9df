// Package model holds the GORM table mappings. Domain code never sees these types.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ensureID assigns a time-ordered UUID when the primary key is still empty.
func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}

// Tables lists every mapped table in dependency order.
func Tables() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&ServiceCategoryModel{},
		&ServiceModel{},
		&ServiceProviderModel{},
		&BookingModel{},
		&ReviewModel{},
		&PaymentModel{},
		&CartItemModel{},
	}
}

// AutoMigrate creates or updates every table of the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables()...)
}
