package model

type Review struct {
	DTO
	UserID   uint     `gorm:"uniqueIndex:idx_review_once" json:"userId"`
	User     *User    `json:"user,omitempty"`
	OrderID  uint     `gorm:"uniqueIndex:idx_review_once" json:"orderId"`
	ItemType string   `json:"itemType"` // hotel, room, destination, event
	ItemID   uint     `gorm:"uniqueIndex:idx_review_once" json:"itemId"`
	Rating   int      `json:"rating"` // 1..5
	Comment  string   `gorm:"size:500" json:"comment"`
	Photos   []string `gorm:"serializer:json" json:"photos"`
}
