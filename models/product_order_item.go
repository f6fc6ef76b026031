package models

type ProductOrderItem struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	OrderID   uint         `gorm:"not null;index" json:"order_id"`
	Order     ProductOrder `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID uint         `gorm:"not null" json:"product_id"`
	Product   Product      `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status    string       `gorm:"type:varchar(50);not null" json:"status"`
	Notes     string       `gorm:"type:text" json:"notes"`
}
