package models

import "time"

type Employee struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Role         string     `gorm:"type:varchar(50);not null" json:"role"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	JoinedAt     time.Time  `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
	IsOnline     bool       `gorm:"not null;default:false" json:"is_online"`
	LastSeen     *time.Time `json:"last_seen"`
}
