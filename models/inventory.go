package models

import "time"

// Inventory statuses. A session starts in_progress and ends either
// completed or cancelled.
const (
	InventoryInProgress = "in_progress"
	InventoryCompleted  = "completed"
	InventoryCancelled  = "cancelled"
)

type Inventory struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	RestaurantID uint               `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant         `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string             `gorm:"type:varchar(255);not null" json:"name"`
	Date         string             `gorm:"type:varchar(32);not null" json:"date"`
	Responsible  string             `gorm:"type:varchar(255)" json:"responsible"`
	Status       string             `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	CreatedAt    time.Time          `gorm:"not null" json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at"`
	Products     []InventoryProduct `gorm:"foreignKey:InventoryID" json:"products"`
}
