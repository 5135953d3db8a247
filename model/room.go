package model

type Room struct {
	DTO
	HotelID     uint     `json:"hotelId"`
	Hotel       *Hotel   `json:"hotel,omitempty"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // standard, deluxe, suite...
	Description string   `json:"description"`
	Price       int64    `json:"price"`    // per night, in rupiah
	Capacity    int      `json:"capacity"` // bookable units of this room type
	Guests      int      `json:"guests"`   // max guests per room
	BedType     string   `json:"bedType"`  // single, twin, double, queen, king
	Size        int      `json:"size"`     // square meters
	Available   bool     `gorm:"default:true" json:"available"`
	Images      []string `gorm:"serializer:json" json:"images"`
	Facilities  []string `gorm:"serializer:json" json:"facilities"`
}
