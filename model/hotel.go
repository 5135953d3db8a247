package model

type Hotel struct {
	DTO
	Name        string   `json:"name"`
	Slug        string   `gorm:"unique" json:"slug"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	Stars       int      `json:"stars"`
	Images      []string `gorm:"serializer:json" json:"images"`
	Facilities  []string `gorm:"serializer:json" json:"facilities"`
	Rooms       []Room   `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
