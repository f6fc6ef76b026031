package models

import "time"

type Restaurant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedBy  string    `gorm:"type:varchar(255);not null" json:"created_by"`
	InviteCode string    `gorm:"type:varchar(8);not null;index" json:"invite_code"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
