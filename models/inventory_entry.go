package models

import "time"

// InventoryEntry is one counted observation. Entries are append-only:
// several staff members may count the same product and every observation
// is kept, so the log doubles as an audit trail.
type InventoryEntry struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	InventoryProductID uint             `gorm:"not null;index" json:"inventory_product_id"`
	InventoryProduct   InventoryProduct `gorm:"foreignKey:InventoryProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserName           string           `gorm:"type:varchar(255);not null" json:"user_name"`
	Quantity           float64          `gorm:"not null" json:"quantity"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
}
