package bootstrap

import (
	"anoa.com/usherhire/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.UsherProfile{},
		&entity.Event{},
		&entity.Booking{},
		&entity.Review{},
	)
}
