package models

type ChecklistItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChecklistID uint      `gorm:"not null;index" json:"checklist_id"`
	Checklist   Checklist `gorm:"foreignKey:ChecklistID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Status      string    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	// Set by the client when an item is toggled; stored verbatim.
	Timestamp *string `gorm:"column:timestamp;type:varchar(64)" json:"timestamp"`
	ItemOrder int     `gorm:"column:item_order;not null" json:"item_order"`
}
