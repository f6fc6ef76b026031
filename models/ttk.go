package models

import "time"

// TTK is a recipe spec card: ingredient list plus preparation notes,
// with the expected output weight in grams.
type TTK struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Category     string     `gorm:"type:varchar(100);not null" json:"category"`
	Output       float64    `gorm:"not null;default:0" json:"output"`
	Ingredients  string     `gorm:"type:text;not null" json:"ingredients"`
	Tech         string     `gorm:"type:text" json:"tech"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
}

// The legacy table is named "ttk", not the plural GORM would pick.
func (TTK) TableName() string {
	return "ttk"
}
