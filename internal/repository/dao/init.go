package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserProfile{},
		&Student{},
		&Position{},
		&Election{},
		&Candidate{},
		&Vote{},
	)
}
