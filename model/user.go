package model

import "time"

type User struct {
	DTO
	Name     string `json:"name"`
	Email    string `gorm:"unique" json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Role     string `gorm:"default:user" json:"role"` // user, admin
	Active   bool   `gorm:"default:true" json:"active"`
}

type PasswordResetToken struct {
	DTO
	UserID    uint      `json:"userId"`
	Code      string    `gorm:"size:12" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
}
