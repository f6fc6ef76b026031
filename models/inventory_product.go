package models

type InventoryProduct struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	InventoryID  uint             `gorm:"not null;index" json:"inventory_id"`
	Inventory    Inventory        `gorm:"foreignKey:InventoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string           `gorm:"type:varchar(255);not null" json:"name"`
	Type         string           `gorm:"type:varchar(50);not null;default:'product'" json:"type"`
	ProductOrder int              `gorm:"column:product_order;not null" json:"product_order"`
	Entries      []InventoryEntry `gorm:"foreignKey:InventoryProductID" json:"entries"`
}
