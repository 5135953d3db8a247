package model

import "time"

const (
	EventActive   = "active"
	EventInactive = "inactive"
)

type Event struct {
	DTO
	Name        string    `json:"name"`
	Slug        string    `gorm:"unique" json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // festival, concert, exhibition...
	Location    string    `json:"location"`
	Price       int64     `json:"price"`    // per ticket, in rupiah
	Capacity    int       `json:"capacity"` // tickets per day
	Status      string    `gorm:"default:active" json:"status"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Images      []string  `gorm:"serializer:json" json:"images"`
}
