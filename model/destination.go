package model

type Destination struct {
	DTO
	Name        string   `json:"name"`
	Slug        string   `gorm:"unique" json:"slug"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // beach, culture, nature...
	City        string   `json:"city"`
	Province    string   `json:"province"`
	Address     string   `json:"address"`
	Price       int64    `json:"price"` // entry ticket, in rupiah
	Images      []string `gorm:"serializer:json" json:"images"`
	Facilities  []string `gorm:"serializer:json" json:"facilities"`
}
