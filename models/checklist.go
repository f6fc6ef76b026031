package models

import "time"

type Checklist struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RestaurantID uint            `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant      `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Workshop     string          `gorm:"type:varchar(100);not null" json:"workshop"`
	Responsible  string          `gorm:"type:varchar(255)" json:"responsible"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	Items        []ChecklistItem `gorm:"foreignKey:ChecklistID" json:"items"`
}
