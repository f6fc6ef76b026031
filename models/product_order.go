package models

import "time"

// ProductOrder is a purchase request raised by an employee. Header status
// and per-item statuses are independent: each line is actionable on its
// own and nothing reconciles them server-side.
type ProductOrder struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedBy    uint       `gorm:"not null" json:"created_by"`
	Creator      Employee   `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status       string     `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}
