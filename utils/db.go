package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
)

// InitDB stores the shared database handle. The first call wins; later
// calls are no-ops.
func InitDB(database *gorm.DB) {
	once.Do(func() {
		db = database
	})
}

// GetDB returns the handle stored by InitDB.
func GetDB() *gorm.DB {
	return db
}
